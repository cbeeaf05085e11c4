package forecast

import "errors"

// ErrInvalidParameter reports malformed engine configuration, such as a
// weight vector that does not sum to one or a non-positive sprint length.
// The forecast call aborts; nothing partial is returned.
var ErrInvalidParameter = errors.New("invalid parameter")

// ErrValidation reports bad override input (empty reason, negative hours).
// The previously stored override, if any, remains unchanged.
var ErrValidation = errors.New("validation failed")
