package ledger

import "errors"

// Set of ledger errors surfaced to callers. None are retryable without
// changed input.
var (
	ErrAlreadyRegistered    = errors.New("profile already exists")
	ErrNotRegistered        = errors.New("profile not registered")
	ErrNotFound             = errors.New("not found")
	ErrUnauthorized         = errors.New("caller is not authorized")
	ErrTrackDeleted         = errors.New("track has been deleted")
	ErrInvalidPercentage    = errors.New("invalid percentage allocation")
	ErrDuplicateContributor = errors.New("contributor already has a share")
	ErrUnknownAction        = errors.New("unknown action kind")
	ErrInvalidPayload       = errors.New("invalid action payload")
	ErrEmptyMessage         = errors.New("comment message is empty")
	ErrNothingToWithdraw    = errors.New("nothing to withdraw")
)
