package utils

import (
	"github.com/google/uuid"

	"github.com/RamonMR95/auto-api/apperror"
)

// ParseUUID is the single choke point for malformed external identifiers.
// Every service method that accepts a raw id string goes through it before
// touching the database.
func ParseUUID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.NewInvalidID("invalid UUID format: %s", raw)
	}
	return id, nil
}
