package importer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
)

// Heurística de encabezados: resuelve columnas por coincidencia de substring
// contra tokens conocidos. Vive separada del reconciliador a propósito: el
// merge solo consume un RowMapping ya resuelto, venga de aquí o del caller.

// Tokens candidatos por campo lógico. El orden de los campos importa: los
// encabezados de código alterno ("cód. barras") también contienen "cod", así
// que se prueban antes que el código principal; "min" se prueba primero para
// que "estoque mínimo" no caiga en la columna de existencias; costo se prueba
// antes que presentación porque "custo unitário" también contiene "unid".
var (
	altCodeTokens   = []string{"alt", "barra", "ean", "aux"}
	codeTokens      = []string{"cod", "sku", "ref"}
	nameTokens      = []string{"nome", "nombre", "name", "produto", "producto", "descri", "item"}
	supplierTokens  = []string{"forn", "prove", "supplier", "distrib"}
	packagingTokens = []string{"apresent", "present", "embal", "unid", "pack"}
	costTokens      = []string{"custo", "costo", "cost", "preco", "precio", "valor"}
	quantityTokens  = []string{"qtd", "qty", "cant", "quant", "estoque", "stock", "exist", "saldo"}
	minTokens       = []string{"min"}
)

// foldAccents elimina marcas diacríticas ("Código" -> "Codigo") para que los
// tokens apliquen igual a encabezados en portugués y español.
var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func normalizeHeader(h string) string {
	out, _, err := transform.String(foldAccents, h)
	if err != nil {
		out = h
	}
	return strings.ToLower(strings.TrimSpace(out))
}

func matchesAny(h string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(h, t) {
			return true
		}
	}
	return false
}

// ResolveMapping deriva el RowMapping desde los encabezados del archivo. Cada
// columna se asigna a lo sumo a un campo y cada campo toma la primera columna
// que coincide. Los mínimos por sede se reconocen por "min" + nombre de sede
// en el mismo encabezado ("Mín. Sede A"); un encabezado "min" sin sede queda
// sin asignar en vez de adivinar.
func ResolveMapping(headers []string, sites []string) dto.RowMapping {
	m := dto.EmptyMapping()

	for i, raw := range headers {
		h := normalizeHeader(raw)
		if h == "" {
			continue
		}

		if matchesAny(h, minTokens) {
			for _, site := range sites {
				if _, taken := m.Min[site]; taken {
					continue
				}
				if strings.Contains(h, normalizeHeader(site)) {
					m.Min[site] = i
					break
				}
			}
			continue
		}

		switch {
		case m.AltCode == dto.ColumnAbsent && matchesAny(h, altCodeTokens):
			m.AltCode = i
		case m.Code == dto.ColumnAbsent && matchesAny(h, codeTokens):
			m.Code = i
		case m.Name == dto.ColumnAbsent && matchesAny(h, nameTokens):
			m.Name = i
		case m.Supplier == dto.ColumnAbsent && matchesAny(h, supplierTokens):
			m.Supplier = i
		case m.Cost == dto.ColumnAbsent && matchesAny(h, costTokens):
			m.Cost = i
		case m.Packaging == dto.ColumnAbsent && matchesAny(h, packagingTokens):
			m.Packaging = i
		case m.Quantity == dto.ColumnAbsent && matchesAny(h, quantityTokens):
			m.Quantity = i
		}
	}

	return m
}
