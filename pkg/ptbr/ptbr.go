// Package ptbr holds pt-BR text helpers: accent folding for search and currency formatting.
package ptbr

import (
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lower-cases s and strips diacritics ("Escavação" -> "escavacao").
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders v as "R$ 1.234,56".
func FormatBRL(v float64) string {
	return "R$ " + printer.Sprintf("%.2f", v)
}

// OnlyDigits drops every non-digit rune (CPF/CNPJ masks).
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
