package auth

import "errors"

var (
	ErrInvalidToken = errors.New("invalid or missing access token")
	ErrMissingClaim = errors.New("required token claim is missing")
)
