package domain

import "errors"

var (
	ErrNotFound       = errors.New("resource not found")
	ErrUserExists     = errors.New("user already exists")
	ErrGameNotSeeded  = errors.New("game record is not seeded")
	ErrMalformedMove  = errors.New("message does not start with a number")
	ErrInvalidMention = errors.New("invalid user")
)
