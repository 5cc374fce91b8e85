package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidLocation   = errors.New("ubicación desconocida")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrSessionNotFound   = errors.New("sesión de carrito no encontrada")
	ErrSessionClosed     = errors.New("la sesión de carrito ya fue finalizada")
)
