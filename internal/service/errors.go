package service

import "errors"

// Business-rule failures. Each maps to one distinct user-facing message in
// the HTTP layer; none of them indicate a system fault.
var (
	// Authentication
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrEmailUnverified      = errors.New("email address not verified")
	ErrAccountSuspended     = errors.New("account suspended")
	ErrRegistrationRejected = errors.New("registration rejected")
	ErrPendingApproval      = errors.New("account pending approval")

	// Registration
	ErrDuplicateAccount = errors.New("account already exists with this email or GMC number")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrPasswordTooShort = errors.New("password too short")
	ErrInvalidGMCNumber = errors.New("invalid GMC number")

	// Lifecycle
	ErrInvalidTransition = errors.New("invalid status transition")

	// Friendship
	ErrAlreadyRequested = errors.New("friend request already exists")
	ErrSelfRequest      = errors.New("cannot send a friend request to yourself")

	// Feed
	ErrYeargroupNotFound = errors.New("no yeargroup for this school and graduation year")

	// Events
	ErrRSVPClosed = errors.New("RSVP deadline has passed")
	ErrEventFull  = errors.New("event is at capacity")

	// Listings
	ErrNotOwner = errors.New("listing is owned by another user")
)
