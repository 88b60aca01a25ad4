package dto

import "github.com/go-playground/validator/v10"

// validate instancia única del validador contra los tags `validate` de los DTOs.
var validate = validator.New()

// Validate valida un DTO contra sus tags. Devuelve el error del validador tal
// cual; los handlers lo traducen a 400 con su mensaje.
func Validate(v any) error {
	return validate.Struct(v)
}
