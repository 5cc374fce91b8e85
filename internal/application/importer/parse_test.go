package importer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Almacen-api/internal/application/importer"
)

// ──────────────────────────────────────────────────────────────────────────────
// Parsing numérico tolerante: los archivos llegan con moneda, separadores
// mixtos y coerciones de hoja de cálculo; una celda ilegible vale 0, nunca
// aborta la importación.
// ──────────────────────────────────────────────────────────────────────────────

func TestParseDecimal_FormatosDeMoneda(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1234.56", "1234.56"},
		{"1.234,56", "1234.56"},     // punto de miles + coma decimal
		{"R$ 1.234,56", "1234.56"},  // símbolo de moneda descartado
		{"$ 2,50", "2.5"},           // solo coma: la coma es el decimal
		{"12 un", "12"},             // sufijo de unidad descartado
		{"  99  ", "99"},
		{"-3,5", "-3.5"},
		{"1.234.567,89", "1234567.89"},
	}
	for _, tc := range cases {
		got := importer.ParseDecimal(tc.in)
		assert.Equal(t, tc.want, got.String(), "entrada %q", tc.in)
	}
}

func TestParseDecimal_FallaValeCero(t *testing.T) {
	for _, in := range []string{"", "   ", "n/a", "sin dato", "-", ",", ".", "..,,"} {
		assert.True(t, importer.ParseDecimal(in).IsZero(), "entrada %q debe valer cero", in)
	}
}

func TestParseQuantity_RedondeoMitadLejosDeCero(t *testing.T) {
	assert.Equal(t, 13, importer.ParseQuantity("12,5"))
	assert.Equal(t, 12, importer.ParseQuantity("12,4"))
	assert.Equal(t, -13, importer.ParseQuantity("-12,5"))
	assert.Equal(t, 1235, importer.ParseQuantity("1.234,6"))
	assert.Zero(t, importer.ParseQuantity("ilegible"))
}

func TestCleanCode_SufijoFloatDeHojaDeCalculo(t *testing.T) {
	assert.Equal(t, "123", importer.CleanCode("123.0"))
	assert.Equal(t, "123", importer.CleanCode("123.000"))
	assert.Equal(t, "123", importer.CleanCode("  123.0  "))
	assert.Equal(t, "123.5", importer.CleanCode("123.5"), "un decimal real no es sufijo sintético")
	assert.Equal(t, "ABC-01", importer.CleanCode("ABC-01"))
	assert.Equal(t, ".0", importer.CleanCode(".0"), "sin parte entera no hay código que recortar")
}
