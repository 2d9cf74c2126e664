package entity

import "errors"

var (
	ErrMalformedEvent   = errors.New("malformed event")
	ErrDependencyFailed = errors.New("dependency call failed")
)
