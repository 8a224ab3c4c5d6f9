package soil

import "errors"

// Hard errors abort a calculation; they never leave partial state behind
// because all inputs are read-only. Match them with errors.Is.
var (
	// ErrInvalidInput covers malformed geometry, depths outside the
	// profile and inconsistent stratigraphy.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedSoilClass means no formula exists for the layer class.
	ErrUnsupportedSoilClass = errors.New("unsupported soil class")

	// ErrIncompleteInput means a parameter required by the selected
	// method is missing.
	ErrIncompleteInput = errors.New("incomplete input")
)
