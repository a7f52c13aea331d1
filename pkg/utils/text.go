package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText remove acentos, espaços redundantes e converte para maiúsculas.
// "  Renda fixa   digital " e "RENDA FIXA DIGITAL" produzem o mesmo resultado.
func NormalizeText(s string) string {
	// transformers guardam estado, então um por chamada
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	return strings.ToUpper(strings.Join(strings.Fields(folded), " "))
}

// ContainsFolded indica se algum dos termos aparece em s, ignorando caixa e acentos
func ContainsFolded(s string, terms ...string) bool {
	normalized := NormalizeText(s)
	if normalized == "" {
		return false
	}

	for _, term := range terms {
		if t := NormalizeText(term); t != "" && strings.Contains(normalized, t) {
			return true
		}
	}

	return false
}
