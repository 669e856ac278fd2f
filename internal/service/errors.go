package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is the single undifferentiated login failure:
	// an unknown email and a wrong password both map here so that callers
	// cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid email/password")

	// ErrUnauthorized is returned when a token verifies but its subject no
	// longer resolves to an existing user.
	ErrUnauthorized = errors.New("unauthorized")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrNotOwner is the deny decision of the ownership guard: the
	// requester is authenticated but does not own the resource.
	ErrNotOwner = errors.New("resource belongs to another user")
)
