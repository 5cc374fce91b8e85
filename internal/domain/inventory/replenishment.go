package inventory

// SuggestTransfer implementa la aritmética de sugerencia de traslado
// (servicio de dominio, puro):
//
//	deficit  = max(0, minimo - stockDestino)
//	proposed = min(deficit, stockCentral)
//
// Nunca se propone mover más de lo que la central tiene en el momento del
// cálculo.
func SuggestTransfer(minimum, atDestination, atCentral int) (deficit, proposed int) {
	deficit = minimum - atDestination
	if deficit < 0 {
		deficit = 0
	}
	proposed = deficit
	if proposed > atCentral {
		proposed = atCentral
	}
	if proposed < 0 {
		proposed = 0
	}
	return deficit, proposed
}

// SuggestPurchase implementa la aritmética de sugerencia de compra:
//
//	suggested = max(0, objetivoAgregado - existenciaAgregada)
//
// La existencia agregada incluye la central: el stock en la central ya cubre
// demanda, así que la sugerencia de compra se reduce al crecer la central
// aunque no haya traslados.
func SuggestPurchase(aggregateTarget, aggregateOwned int) int {
	suggested := aggregateTarget - aggregateOwned
	if suggested < 0 {
		return 0
	}
	return suggested
}
