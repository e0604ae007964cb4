package recipe

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned (wrapped) by Validate and Load.
// Compare with errors.Is.
const (
	// ErrNegativeVolume indicates a component volume below zero.
	ErrNegativeVolume = constError("volume must not be negative")

	// ErrABVOutOfRange indicates an alcohol content outside the component's bounds.
	ErrABVOutOfRange = constError("abv out of range")

	// ErrNegativeSugar indicates a sugar mass below zero.
	ErrNegativeSugar = constError("sugar must not be negative")

	// ErrNotFinite indicates a NaN or infinite value.
	ErrNotFinite = constError("value must be finite")

	// ErrUnsupportedSchema indicates a recipe schema_version this build cannot read.
	ErrUnsupportedSchema = constError("unsupported recipe schema version")
)
