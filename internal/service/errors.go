package service

import "errors"

// Sentinel errors returned by the service layer. HTTP handlers map them to
// response statuses with [errors.Is].
var (
	// ErrMissingCredentials is returned when a signup or login request omits
	// the email or the password.
	ErrMissingCredentials = errors.New("email and password are required")

	// ErrInvalidCredentials is returned on any failed login. Unknown email
	// and wrong password deliberately share this single error so the
	// response carries no signal about which part was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenCreationFailed is returned when signing a session token fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is the normalised result of any token
	// validation failure (expired, malformed, wrong signature or issuer).
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrEmptyURL is returned when a bookmark ingestion request carries no
	// URL. It is detected before any external call is made.
	ErrEmptyURL = errors.New("url is required")
)
