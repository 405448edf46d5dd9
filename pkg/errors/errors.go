package errors

import (
	"errors"
	"fmt"
)

var (
	// Errores de negocio del núcleo de inventario.
	ErrNotFound            = errors.New("registro no encontrado")
	ErrBadRequest          = errors.New("solicitud inválida")
	ErrUnsupportedCategory = errors.New("tipo de equipo no reconocido")
	ErrEmptyRepairNotes    = errors.New("las notas de reparación no pueden estar vacías")
)

// HttpError asocia un error de negocio con un estado HTTP y un mensaje para el cliente.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details map[string]interface{}) *HttpError {
	return &HttpError{
		Code:    code,
		Message: message,
		Err:     err,
		Details: details,
	}
}

type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
