package pool

import "errors"

// Fatal resolution errors. Any of these aborts the whole resolution pass;
// no partial map is ever returned alongside them. Callers can classify a
// failure with errors.Is.
var (
	// ErrParse indicates a pool document that is not valid JSON after
	// lenient normalization.
	ErrParse = errors.New("pool config parse failure")
	// ErrMissingCoinIdentity indicates a document with no usable coin name:
	// no "coin" field, no "coinName" field, and no derivable file stem.
	ErrMissingCoinIdentity = errors.New("pool config has no coin identity")
	// ErrUnknownProfile indicates a coin name with no matching profile in
	// the registry.
	ErrUnknownProfile = errors.New("unknown coin profile")
	// ErrPortConflict indicates two documents declaring the same port.
	ErrPortConflict = errors.New("port declared by two pool configs")
	// ErrDuplicateCoinName indicates two documents resolving to the same
	// coin name.
	ErrDuplicateCoinName = errors.New("two pool configs resolve to the same coin")
)
