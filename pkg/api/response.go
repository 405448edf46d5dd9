package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "inventory-system/pkg/errors"
)

type Response[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Body    T      `json:"body,omitempty"`
}

type ListBody[T any] struct {
	List  []T    `json:"list"`
	Total uint64 `json:"total"`
}

// SuccessOne devuelve un solo objeto.
func SuccessOne[T any](c echo.Context, code int, message string, data T) error {
	return c.JSON(code, Response[T]{
		Status:  true,
		Message: message,
		Body:    data,
	})
}

func SuccessList[T any](c echo.Context, message string, list []T) error {
	if list == nil {
		list = make([]T, 0)
	}
	return c.JSON(http.StatusOK, Response[ListBody[T]]{
		Status:  true,
		Message: message,
		Body: ListBody[T]{
			List:  list,
			Total: uint64(len(list)),
		},
	})
}

// ErrorResponse traduce la taxonomía de errores del núcleo a códigos HTTP.
// Solo se expone el mensaje del usuario, nunca los detalles técnicos.
func ErrorResponse(c echo.Context, err error) error {
	code := http.StatusInternalServerError
	msg := "error interno del servidor"

	var httpErr *apperrors.HttpError
	var inputErr *apperrors.InvalidInputError

	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		msg = httpErr.Message
	case errors.As(err, &inputErr):
		code = http.StatusBadRequest
		msg = inputErr.Message
	case errors.Is(err, apperrors.ErrNotFound):
		code = http.StatusNotFound
		msg = apperrors.ErrNotFound.Error()
	case errors.Is(err, apperrors.ErrUnsupportedCategory):
		code = http.StatusBadRequest
		msg = apperrors.ErrUnsupportedCategory.Error()
	case errors.Is(err, apperrors.ErrEmptyRepairNotes):
		code = http.StatusBadRequest
		msg = apperrors.ErrEmptyRepairNotes.Error()
	case errors.Is(err, apperrors.ErrBadRequest):
		code = http.StatusBadRequest
		msg = apperrors.ErrBadRequest.Error()
	}

	return c.JSON(code, Response[any]{
		Status:  false,
		Message: msg,
	})
}
