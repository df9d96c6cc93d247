package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrSourceNotTabular = errors.New("la fuente no es legible como tabla")
	ErrUnknownDataset   = errors.New("dataset desconocido")
	ErrInvalidInput     = errors.New("entrada inválida")
)
