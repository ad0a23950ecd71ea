package services

import "errors"

// Sentinel errors surfaced to handlers, which map them onto HTTP statuses.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrSelfReply          = errors.New("cannot comment on your own review")
	ErrParentMismatch     = errors.New("parent review belongs to a different movie")
	ErrProfileExists      = errors.New("profile already exists")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnknownStar        = errors.New("unknown star value")
	ErrUnknownRelation    = errors.New("referenced entity does not exist")
)
