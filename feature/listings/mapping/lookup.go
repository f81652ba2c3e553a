package mapping

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var offerTypes = map[string]string{
	"1": "Padrão",
	"2": "Destaque",
	"3": "Super Destaque",
}

var categories = map[string]string{
	"RE": "Residencial",
	"CO": "Comercial",
	"RU": "Rural",
	"IN": "Industrial",
}

// standards is keyed by the folded form, see fold.
var standards = map[string]string{
	"baixo": "Baixo",
	"medio": "Médio",
	"alto":  "Alto",
	"luxo":  "Luxo",
}

const notInformed = "nao informado"

// OfferType maps the numeric offer code to its label. Unknown codes pass
// through unchanged.
func OfferType(code string) string {
	if v, ok := offerTypes[strings.TrimSpace(code)]; ok {
		return v
	}
	return code
}

// Category maps the two-letter category code. Unknown codes pass through.
func Category(code string) string {
	if v, ok := categories[strings.TrimSpace(code)]; ok {
		return v
	}
	return code
}

// Standard canonicalizes a quality standard ignoring case and accents.
// Only "não informado" is absent; anything else unknown, blank included,
// passes through trimmed.
func Standard(value string) *string {
	key := fold(value)
	if key == notInformed {
		return nil
	}
	if v, ok := standards[key]; ok {
		return &v
	}
	v := strings.TrimSpace(value)
	return &v
}

// fold lower-cases s, strips combining marks and collapses inner whitespace.
// Transformers are not safe for concurrent use, so one is built per call.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	folded := cases.Fold().String(stripped)
	return strings.Join(strings.Fields(folded), " ")
}
