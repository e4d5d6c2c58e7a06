package domain

import "errors"

var (
	ErrMissingInput     = errors.New("missing input")
	ErrSchemaMismatch   = errors.New("schema mismatch")
	ErrModelUnavailable = errors.New("model unavailable")
	ErrInference        = errors.New("inference failed")
)

const (
	KindMissingInput     = "missing_input"
	KindSchemaMismatch   = "schema_mismatch"
	KindModelUnavailable = "model_unavailable"
	KindInternal         = "internal"
)

// ErrorKind maps err to a stable label. A nil error has no kind.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingInput):
		return KindMissingInput
	case errors.Is(err, ErrSchemaMismatch):
		return KindSchemaMismatch
	case errors.Is(err, ErrModelUnavailable):
		return KindModelUnavailable
	default:
		return KindInternal
	}
}

// Classified reports whether err already carries one of the known kinds.
func Classified(err error) bool {
	return errors.Is(err, ErrMissingInput) ||
		errors.Is(err, ErrSchemaMismatch) ||
		errors.Is(err, ErrModelUnavailable) ||
		errors.Is(err, ErrInference)
}
