package sessiontransport

import "errors"

// ErrNoToken is returned when the request carries no session cookie.
var ErrNoToken = errors.New("no session token")
