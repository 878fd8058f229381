// Package identity derives the human-readable patient identifier used as
// the join key across every collection: "P" + gender letter + initials +
// canonical birth date. The format is deliberately not unique by itself;
// collisions are resolved by a registration-order numeric suffix.
package identity

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/JavierVixer/OCCHIAPP/internal/dates"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks removes diacritics so "Álvaro" and "Alvaro" produce the same
// initial.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// GenderLetter maps free-text gender to M, F, or N. The match is a
// case-insensitive substring so "Masculino", "masculino" and "MASCULINO"
// all work; N covers non-binary and unspecified.
func GenderLetter(genero string) string {
	s := strings.ToLower(genero)
	switch {
	case strings.Contains(s, "mascul"):
		return "M"
	case strings.Contains(s, "femen"):
		return "F"
	default:
		return "N"
	}
}

// cleanInitial keeps only ASCII letters after stripping diacritics; a rune
// that yields nothing falls back to X.
func cleanInitial(word string) string {
	if word == "" {
		return "X"
	}
	flat, _, err := transform.String(stripMarks, string([]rune(word)[0]))
	if err != nil {
		return "X"
	}
	for _, r := range flat {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return strings.ToUpper(string(r))
		}
	}
	return "X"
}

// Initials takes the first letter of the first and last whitespace-split
// tokens of the name. Missing tokens default to X.
func Initials(nombre string) string {
	words := strings.Fields(nombre)
	var first, last string
	if len(words) > 0 {
		first = words[0]
		last = words[len(words)-1]
	}
	return cleanInitial(first) + cleanInitial(last)
}

// BuildID computes the base patient id from demographics. Deterministic:
// the same demographics always produce the same id. An unparseable birth
// date contributes the date sentinel, not an error.
func BuildID(nombre, genero, fechaNac string) string {
	return "P" + GenderLetter(genero) + Initials(nombre) + dates.Normalize(fechaNac)
}

// UniqueID resolves collisions against the existing id set by appending
// -2, -3, ... until an unused id is found. The suffix reflects
// registration order, nothing more.
func UniqueID(base string, exists func(id string) bool) string {
	if !exists(base) {
		return base
	}
	for n := 2; ; n++ {
		candidate := base + "-" + strconv.Itoa(n)
		if !exists(candidate) {
			return candidate
		}
	}
}
