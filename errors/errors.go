package fnderrors

import (
	"errors"
)

// Error codes embedded in wrapped error messages for easier grepping in the logs.
const (
	DEV_ERROR = iota + 1000
	UNEXPECTED_ERROR
	OS_ERROR
	INPUT_ERROR
	CONNECTION_ERROR
	RESPONSE_ERROR
	HTML_ERROR
	JSON_ERROR
)

var (
	// The session cookie is invalid or expired based on the
	// login-state marker embedded in the listing page.
	ErrNotLoggedIn = errors.New("session is not logged in, the cookie in the config may be invalid or expired")

	// The post was skipped due to the configured download scope.
	ErrSkipPost = errors.New("post is outside the configured download scope")

	// The post has no text content in any of the recognised JSON shapes.
	ErrNoTextContent = errors.New("no text content found in post")

	ErrSkipLine = errors.New("skip line")
)
