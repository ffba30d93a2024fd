// Package ledger maintains the revenue accounting state for the music
// platform: artist profiles, the track catalog, contributor revenue
// shares, track comments, accrued earnings balances, and the platform
// fee pool. All token movement stays in the token package; the ledger
// only tracks who is owed what.
package ledger

import (
	"sync"

	"github.com/riffworks/riff/foundation/riff/account"
)

// Profile represents the identity record for a registered artist or fan.
type Profile struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

// Track represents a unit of uploaded musical content. Deletion is a
// soft flag so ids and earnings history stay addressable.
type Track struct {
	ID          uint64            `json:"id"`
	Owner       account.AccountID `json:"owner"`
	CID         string            `json:"cid"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Deleted     bool              `json:"deleted"`
	UploadedAt  uint64            `json:"uploaded_at"`
}

// Contributor represents a basis-point revenue share on a track. The
// owner's implicit share is always derived, never stored.
type Contributor struct {
	Account       account.AccountID `json:"account"`
	PercentageBps uint64            `json:"percentage_bps"`
}

// Comment represents a paid comment appended to a track.
type Comment struct {
	Author    account.AccountID `json:"author"`
	Message   string            `json:"message"`
	TimeStamp uint64            `json:"timestamp"`
}

// Credit represents one beneficiary's share of a settled fee.
type Credit struct {
	Beneficiary account.AccountID `json:"beneficiary"`
	Amount      uint64            `json:"amount"`
}

// =============================================================================

// Ledger manages the revenue accounting state. All mutation happens
// through the settlement engine in the state package, which serializes
// calls; the internal lock keeps concurrent reads safe.
type Ledger struct {
	mu           sync.RWMutex
	profiles     map[account.AccountID]Profile
	tracks       map[uint64]Track
	nextTrackID  uint64
	contributors map[uint64][]Contributor
	comments     map[uint64][]Comment
	earnings     map[uint64]map[account.AccountID]uint64
	lifetime     map[uint64]uint64
	platformPool uint64
}

// New constructs an empty ledger ready for replay or live calls.
func New() *Ledger {
	return &Ledger{
		profiles:     make(map[account.AccountID]Profile),
		tracks:       make(map[uint64]Track),
		contributors: make(map[uint64][]Contributor),
		comments:     make(map[uint64][]Comment),
		earnings:     make(map[uint64]map[account.AccountID]uint64),
		lifetime:     make(map[uint64]uint64),
	}
}
