package blend

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrInvalidUnit indicates an unrecognized volume unit.
const ErrInvalidUnit = constError("invalid volume unit")
