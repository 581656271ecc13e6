package domain

import "errors"

var ErrBackendUnavailable = errors.New("backend unavailable")
var ErrMissingProductID = errors.New("missing product id")

// MsgUnauthorizedToken is the exact user-facing message surfaced when a role
// key cannot be resolved to a token. It travels inside the page result, never
// as a Go error.
const MsgUnauthorizedToken = "Unauthorized: Token not provided or invalid"
