package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los casos de uso los
// envuelven con %w para agregar contexto; la capa HTTP resuelve el status
// con errors.Is.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
)
