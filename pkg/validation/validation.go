package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-TireSlotService/pkg/types"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// В ошибках используем имена полей из json тегов
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	_ = v.RegisterValidation("hhmm", validateHHMM)

	return v
}

// Struct валидирует структуру по тегам `validate`
func Struct(s interface{}) error {
	return validate.Struct(s)
}

// validateHHMM проверяет время в формате "HH:MM" с ведущими нулями
func validateHHMM(fl validator.FieldLevel) bool {
	_, err := types.ParseMinute(fl.Field().String())
	return err == nil
}
