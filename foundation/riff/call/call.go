// Package call defines the signed call envelopes accepted by the ledger.
// Every mutating operation travels as a value signed by the caller's
// private key. The caller's account id is recovered from the signature.
package call

import "fmt"

// ActionKind represents the closed set of fee-bearing fan actions.
type ActionKind string

// Set of recognized fan actions.
const (
	ActionPlay    ActionKind = "play"
	ActionLike    ActionKind = "like"
	ActionComment ActionKind = "comment"
	ActionBanger  ActionKind = "banger"
)

// ParseActionKind validates a raw string represents a recognized action.
func ParseActionKind(value string) (ActionKind, error) {
	kind := ActionKind(value)
	switch kind {
	case ActionPlay, ActionLike, ActionComment, ActionBanger:
		return kind, nil
	}

	return "", fmt.Errorf("unrecognized action kind %q", value)
}

// =============================================================================

// ProfileKind selects the profile operation being performed.
type ProfileKind string

// Set of profile operations.
const (
	ProfileRegister ProfileKind = "register"
	ProfileUpdate   ProfileKind = "update"
)

// TrackKind selects the track operation being performed.
type TrackKind string

// Set of track operations.
const (
	TrackUpload TrackKind = "upload"
	TrackDelete TrackKind = "delete"
)

// ContributorKind selects the contributor operation being performed.
type ContributorKind string

// Set of contributor operations.
const (
	ContributorAdd       ContributorKind = "add"
	ContributorConfigure ContributorKind = "configure"
)

// WithdrawKind selects which balance a withdrawal pays out.
type WithdrawKind string

// Set of withdrawal operations.
const (
	WithdrawEarnings WithdrawKind = "earnings"
	WithdrawPlatform WithdrawKind = "platform"
)
