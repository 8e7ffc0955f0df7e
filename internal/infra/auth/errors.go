package auth

import "errors"

// ErrInvalidToken wraps every token validation failure.
var ErrInvalidToken = errors.New("invalid access token")
