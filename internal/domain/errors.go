package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrMissingRangeBounds = errors.New("rango custom requiere fecha inicial y fecha final")
	ErrUnknownRangeKind   = errors.New("tipo de rango desconocido")
)
