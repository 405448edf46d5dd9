package validation

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "inventory-system/pkg/errors"
)

// EchoValidator adapta go-playground/validator al contrato echo.Validator.
type EchoValidator struct {
	validate *validator.Validate
}

func NewEchoValidator(v *validator.Validate) *EchoValidator {
	return &EchoValidator{validate: v}
}

func (ev *EchoValidator) Validate(i interface{}) error {
	err := ev.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	details := map[string]interface{}{}
	var parts []string
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			details[fe.Field()] = fe.Tag()
			parts = append(parts, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
	}

	msg := "datos de entrada inválidos"
	if len(parts) > 0 {
		msg = fmt.Sprintf("datos de entrada inválidos: %s", strings.Join(parts, ", "))
	}
	return apperrors.NewHttpError(http.StatusBadRequest, msg, err, details)
}
