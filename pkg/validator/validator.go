// Package validator valida DTOs de entrada con etiquetas `validate` (go-playground/validator).
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// FieldError campo que no pasó la validación.
type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Param string `json:"param,omitempty"`
}

// String "campo:regla[=param]".
func (e FieldError) String() string {
	if e.Param != "" {
		return fmt.Sprintf("%s:%s=%s", e.Field, e.Tag, e.Param)
	}
	return e.Field + ":" + e.Tag
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// bulkSeparators separadores del formato de carga masiva (coma, tabulador, fin de línea).
const bulkSeparators = ",\t\r\n"

func init() {
	// Los errores usan el nombre JSON del campo.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// decimal.Decimal se valida como número para poder usar gte=0 en precios.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	// bulkfield: texto que se exporta como campo de la carga masiva.
	_ = validate.RegisterValidation("bulkfield", func(fl validator.FieldLevel) bool {
		return !strings.ContainsAny(fl.Field().String(), bulkSeparators)
	})
}

// Struct valida data y devuelve los campos con error (nil si todo está bien).
func Struct(data any) []FieldError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Tag: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Tag: fe.Tag(), Param: fe.Param()})
	}
	return out
}

// Summary une los errores en un mensaje legible.
func Summary(errs []FieldError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, ", ")
}
