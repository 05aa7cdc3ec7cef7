package appearance

import "errors"

// ErrInvalidMode is returned by SetMode for names other than "light",
// "dark" and "system".
var ErrInvalidMode = errors.New("appearance: invalid mode")
