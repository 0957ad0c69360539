// Package nit valida el NIT colombiano con el dígito de verificación módulo 11 de la DIAN.
package nit

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// pesos del algoritmo (Orden Administrativa 4 de 1989), aplicados de derecha a izquierda.
var weights = []int{3, 7, 13, 17, 19, 23, 29, 37, 41, 43, 47, 53, 59, 67, 71}

// ErrInvalid NIT mal formado o con dígito de verificación incorrecto.
var ErrInvalid = errors.New("nit inválido")

// CheckDigit calcula el dígito de verificación del número base (sin DV).
func CheckDigit(base string) (byte, error) {
	digits := extractDigits(base)
	if len(digits) == 0 || len(digits) > len(weights) {
		return 0, fmt.Errorf("%w: se esperaban entre 1 y %d dígitos", ErrInvalid, len(weights))
	}
	var sum int
	for i := 0; i < len(digits); i++ {
		d := int(digits[len(digits)-1-i] - '0')
		sum += d * weights[i]
	}
	r := sum % 11
	if r == 0 || r == 1 {
		return byte('0' + r), nil
	}
	return byte('0' + (11 - r)), nil
}

// Validate acepta cédulas y NIT sin DV ("900123456"); si el valor trae DV separado por guion
// ("900.123.456-8") lo verifica.
func Validate(taxID string) error {
	taxID = strings.TrimSpace(taxID)
	if taxID == "" {
		return fmt.Errorf("%w: vacío", ErrInvalid)
	}
	base, dv, hasDV := strings.Cut(taxID, "-")
	if len(extractDigits(base)) == 0 {
		return fmt.Errorf("%w: sin dígitos", ErrInvalid)
	}
	for _, r := range base {
		if !unicode.IsDigit(r) && r != '.' && r != ' ' {
			return fmt.Errorf("%w: carácter %q no permitido", ErrInvalid, r)
		}
	}
	if !hasDV {
		return nil
	}
	dv = strings.TrimSpace(dv)
	if len(dv) != 1 || !unicode.IsDigit(rune(dv[0])) {
		return fmt.Errorf("%w: dígito de verificación %q", ErrInvalid, dv)
	}
	expected, err := CheckDigit(base)
	if err != nil {
		return err
	}
	if dv[0] != expected {
		return fmt.Errorf("%w: dígito de verificación esperado %c, recibido %c", ErrInvalid, expected, dv[0])
	}
	return nil
}

// Base devuelve solo los dígitos del número sin DV ("900.123.456-8" → "900123456").
// Sirve para comparar NIT escritos con distinto formato.
func Base(taxID string) string {
	base, _, _ := strings.Cut(taxID, "-")
	return string(extractDigits(base))
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
