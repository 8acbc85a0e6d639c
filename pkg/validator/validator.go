package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct valida un struct con tags `validate` y devuelve un error legible.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var msgs []string
	for _, fe := range err.(validator.ValidationErrors) {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" es requerido")
		case "min":
			msgs = append(msgs, field+" debe tener al menos "+fe.Param()+" caracteres")
		case "max":
			msgs = append(msgs, field+" debe tener como máximo "+fe.Param()+" caracteres")
		case "email":
			msgs = append(msgs, field+" debe ser un email válido")
		case "len":
			msgs = append(msgs, field+" debe tener exactamente "+fe.Param()+" caracteres")
		case "uuid":
			msgs = append(msgs, field+" debe ser un UUID válido")
		default:
			msgs = append(msgs, field+" es inválido")
		}
	}

	return fmt.Errorf("%s", strings.Join(msgs, ", "))
}
