package types

import "github.com/pkg/errors"

var (
	// ErrInvalidSelection is returned when a selector receives a value outside its option set.
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrAuthenticationFailure is returned when the remote service rejects the API key,
	// or no API key could be obtained.
	ErrAuthenticationFailure = errors.New("authentication failure")
	// ErrQueryFailure covers every other way a query can fail to produce results.
	ErrQueryFailure = errors.New("query failure")
)
