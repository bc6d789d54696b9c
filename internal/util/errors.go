package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrNotLinked          = errors.New("no active partner link")
	ErrAlreadyLinked      = errors.New("already linked with a partner")
	ErrInviteNotFound     = errors.New("invite code not found or already used")
	ErrSelfInvite         = errors.New("cannot accept your own invite")
	ErrAlreadyCheckedIn   = errors.New("already checked in today")
	ErrInvalidCheckIn     = errors.New("mood and connection score are required")

	// ErrUnknownModule signals a contract violation: callers must only pass
	// module ids that exist in the build-time schema.
	ErrUnknownModule = errors.New("unknown assessment module")
)
