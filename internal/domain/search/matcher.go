// Package search implementa la coincidencia difusa de artículos: subcadena, prefijo de
// palabra y abreviaturas cortas ("cb" → "cable"), con AND entre términos.
package search

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// maxAbbrevLen longitud máxima de un término tratado como abreviatura.
const maxAbbrevLen = 3

// Fold pasa a minúsculas y elimina tildes ("Café" → "cafe").
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Terms separa la consulta en términos normalizados. Consulta en blanco → nil.
func Terms(query string) []string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return nil
	}
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, Fold(f))
	}
	return out
}

// Haystack texto buscable del artículo: código, nombre, marca y referencia.
func Haystack(a *entity.Article) string {
	return Fold(a.Code + " " + a.Name + " " + a.Brand + " " + a.Reference)
}

// Match indica si todos los términos coinciden con el artículo.
func Match(a *entity.Article, terms []string) bool {
	if len(terms) == 0 {
		return false
	}
	text := Haystack(a)
	words := strings.Fields(text)
	for _, term := range terms {
		if !matchTerm(text, words, term) {
			return false
		}
	}
	return true
}

func matchTerm(text string, words []string, term string) bool {
	if strings.Contains(text, term) {
		return true
	}
	short := utf8.RuneCountInString(term) <= maxAbbrevLen
	for _, w := range words {
		if strings.HasPrefix(w, term) {
			return true
		}
		if short && isAbbreviation(term, w) {
			return true
		}
	}
	return false
}

// isAbbreviation: misma primera letra y el resto del término aparece en orden dentro de la palabra.
func isAbbreviation(term, word string) bool {
	t := []rune(term)
	w := []rune(word)
	if len(t) == 0 || len(w) == 0 || t[0] != w[0] {
		return false
	}
	i := 1
	for _, r := range w[1:] {
		if i == len(t) {
			break
		}
		if r == t[i] {
			i++
		}
	}
	return i == len(t)
}
