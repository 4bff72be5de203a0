package itamae

import "fmt"

// ErrorKind identifies the class of decode failure recorded against a
// field or, for Radiotap version/length problems, returned outright.
type ErrorKind int

const (
	// KindTruncated means the buffer ended before a required field could
	// be read.
	KindTruncated ErrorKind = iota
	// KindBadVersion means the Radiotap version byte was not 0.
	KindBadVersion
	// KindBadLength means the Radiotap it_len field disagreed with the
	// buffer length or the walked field bodies.
	KindBadLength
	// KindUnknownField means a presence bit was set with no matching
	// catalog entry.
	KindUnknownField
	// KindMalformedCrypt means the protected-frame flag was set but the
	// header bytes matched no known encryption variant.
	KindMalformedCrypt
)

func (k ErrorKind) String() string {
	switch k {
	case KindTruncated:
		return "truncated"
	case KindBadVersion:
		return "bad-version"
	case KindBadLength:
		return "bad-length"
	case KindUnknownField:
		return "unknown-field"
	case KindMalformedCrypt:
		return "malformed-crypt"
	default:
		return "unknown"
	}
}

// DecodeError is a single field-level or fatal decode failure. Radiotap
// and MPDU decoders never render errors to text themselves; DecodeError
// carries the structured context and leaves rendering to the caller.
type DecodeError struct {
	Field   string
	Kind    ErrorKind
	Context string
}

func (e *DecodeError) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Kind)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Field, e.Kind, e.Context)
}

func newTruncated(field string, needed, available int) *DecodeError {
	if available < 0 {
		available = 0
	}
	return &DecodeError{
		Field:   field,
		Kind:    KindTruncated,
		Context: fmt.Sprintf("needed %d, available %d", needed, available),
	}
}

func newError(field string, kind ErrorKind, context string) *DecodeError {
	return &DecodeError{Field: field, Kind: kind, Context: context}
}

// FieldError pairs a field/location name with the error recorded against
// it during a partial MPDU or Radiotap decode.
type FieldError struct {
	Field string
	Err   *DecodeError
}
