package service

import "errors"

// Sentinel errors exposed by the services. Handlers translate them to
// HTTP statuses; callers match with errors.Is. Reference failures are
// never retried by the services themselves.
var (
	// ErrStaffNotFound indicates a staff reference does not resolve.
	ErrStaffNotFound = errors.New("staff not found")
	// ErrChildNotFound indicates a child reference does not resolve.
	ErrChildNotFound = errors.New("child not found")
	// ErrDonorNotFound indicates a donor reference does not resolve.
	ErrDonorNotFound = errors.New("donor not found")
	// ErrActivityNotFound indicates the activity does not exist.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrParticipationNotFound indicates the participation does not exist.
	ErrParticipationNotFound = errors.New("participation not found")
	// ErrDuplicateEnrollment indicates the (activity, child) pair is
	// already enrolled, whatever the status of the existing row.
	ErrDuplicateEnrollment = errors.New("child is already enrolled in this activity")
	// ErrCapacityExceeded indicates the activity is at its participant limit.
	ErrCapacityExceeded = errors.New("activity has reached its maximum participants")
	// ErrInvalidField indicates a payload field failed a manual check that
	// struct validation cannot express (e.g. explicit null on a required field).
	ErrInvalidField = errors.New("invalid field")
	// ErrInvalidCredentials indicates a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken indicates the registration email is already in use.
	ErrEmailTaken = errors.New("email is already registered")
)
