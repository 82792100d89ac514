package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrInvalidInput    = goerr.New("invalid input")
	ErrMalformedRecord = goerr.New("malformed record")
	ErrSessionNotFound = goerr.New("session not found")
	ErrUnauthorized    = goerr.New("unauthorized")
)
