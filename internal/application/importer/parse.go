package importer

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Reglas de parsing numérico para archivos externos con formato heterogéneo.
// Las fallas de parsing se recuperan localmente (0 / 0.0), nunca se propagan:
// una celda ilegible no puede abortar una importación completa.

// ParseDecimal interpreta un campo tipo moneda: descarta símbolos de moneda y
// sufijos de unidad, y normaliza separadores de miles/decimales. Si la cadena
// trae ',' y '.' a la vez, '.' es separador de miles y ',' el decimal; si solo
// trae ',', la coma es el decimal. Falla de parsing -> 0.
func ParseDecimal(s string) decimal.Decimal {
	cleaned := extractNumeric(s)
	if cleaned == "" {
		return decimal.Zero
	}

	hasComma := strings.Contains(cleaned, ",")
	hasDot := strings.Contains(cleaned, ".")
	switch {
	case hasComma && hasDot:
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	case hasComma:
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseQuantity aplica la misma normalización que ParseDecimal y redondea al
// entero más cercano (mitades alejándose de cero: "12,5" -> 13). Falla -> 0.
func ParseQuantity(s string) int {
	return int(ParseDecimal(s).Round(0).IntPart())
}

// CleanCode normaliza un campo tipo código: recorta espacios y elimina el
// sufijo ".0" sintético que introduce la coerción a float de las hojas de
// cálculo ("123.0" -> "123").
func CleanCode(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '.'); i > 0 {
		if rest := s[i+1:]; rest != "" && strings.Trim(rest, "0") == "" {
			return s[:i]
		}
	}
	return s
}

// extractNumeric conserva solo dígitos, separadores y el signo inicial,
// descartando símbolos de moneda ("R$ 1.234,56") y sufijos ("12 un").
func extractNumeric(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= '0' && r <= '9', r == ',', r == '.':
			b.WriteRune(r)
		case r == '-' && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), ",.")
}
