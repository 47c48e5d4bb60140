package server

import (
	"errors"

	"chronicle/internal/models"
)

// isInvalidID reports whether err is the INVALID_ID application error.
// Malformed ids are surfaced externally as 404, identical to not-found.
func isInvalidID(err error) bool {
	var appErr *models.AppError
	return errors.As(err, &appErr) && appErr.Code == "INVALID_ID"
}
