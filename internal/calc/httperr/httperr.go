// Package httperr maps engine errors onto HTTP responses for the calc
// handlers. Input problems come back as 400 with the error text so the
// client can see which layer or depth was rejected.
package httperr

import (
	"errors"
	"net/http"

	"Stratum/internal/soil"
)

func Write(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, soil.ErrInvalidInput),
		errors.Is(err, soil.ErrUnsupportedSoilClass),
		errors.Is(err, soil.ErrIncompleteInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "Calculation error", http.StatusInternalServerError)
	}
}
