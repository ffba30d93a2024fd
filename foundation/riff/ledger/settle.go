package ledger

import (
	"fmt"

	"github.com/riffworks/riff/foundation/riff/account"
	"github.com/riffworks/riff/foundation/riff/call"
)

// CheckAction validates a fan action against the catalog and payload
// rules without mutating any state. The settlement engine calls this
// before moving any tokens so a failed action leaves nothing behind.
func (l *Ledger) CheckAction(trackID uint64, kind call.ActionKind, message string) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	track, exists := l.tracks[trackID]
	if !exists {
		return fmt.Errorf("track %d: %w", trackID, ErrNotFound)
	}

	if track.Deleted {
		return fmt.Errorf("track %d: %w", trackID, ErrTrackDeleted)
	}

	switch kind {
	case call.ActionComment:
		if message == "" {
			return fmt.Errorf("track %d: %w", trackID, ErrEmptyMessage)
		}

	case call.ActionPlay, call.ActionLike, call.ActionBanger:
		if message != "" {
			return fmt.Errorf("action %q carries a message: %w", kind, ErrInvalidPayload)
		}

	default:
		return fmt.Errorf("action %q: %w", kind, ErrUnknownAction)
	}

	return nil
}

// ApplySettlement splits a collected fee across the platform, the
// track's contributors, and the track owner, credits every accrued
// balance, and appends the comment record when the action is a comment.
// The platform cut comes off the top; each contributor is credited
// net * bps / 10000 with integer math; the owner's credit is the net
// minus the contributor credits so all rounding remainder accrues to
// the owner. CheckAction must have passed for the same action.
func (l *Ledger) ApplySettlement(caller account.AccountID, trackID uint64, kind call.ActionKind, message string, fee uint64, platformBps uint64, timestamp uint64) ([]Credit, uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	track := l.tracks[trackID]

	platform := fee * platformBps / maxAllocationBps
	net := fee - platform

	shares := l.contributors[trackID]
	credits := make([]Credit, 0, len(shares)+1)

	var distributed uint64
	for _, share := range shares {
		amount := net * share.PercentageBps / maxAllocationBps
		distributed += amount
		credits = append(credits, Credit{
			Beneficiary: share.Account,
			Amount:      amount,
		})
	}

	// Remainder to owner, never lost, never double counted.
	credits = append(credits, Credit{
		Beneficiary: track.Owner,
		Amount:      net - distributed,
	})

	balances, exists := l.earnings[trackID]
	if !exists {
		balances = make(map[account.AccountID]uint64)
		l.earnings[trackID] = balances
	}
	for _, credit := range credits {
		balances[credit.Beneficiary] += credit.Amount
	}

	l.lifetime[trackID] += net
	l.platformPool += platform

	if kind == call.ActionComment {
		l.comments[trackID] = append(l.comments[trackID], Comment{
			Author:    caller,
			Message:   message,
			TimeStamp: timestamp,
		})
	}

	return credits, platform
}

// QueryComments returns the append-only comment list for the track.
func (l *Ledger) QueryComments(trackID uint64) []Comment {
	l.mu.RLock()
	defer l.mu.RUnlock()

	comments := make([]Comment, len(l.comments[trackID]))
	copy(comments, l.comments[trackID])

	return comments
}

// EarningsBalance returns the accrued, unwithdrawn balance for the
// specified beneficiary on the specified track.
func (l *Ledger) EarningsBalance(trackID uint64, beneficiary account.AccountID) uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.earnings[trackID][beneficiary]
}

// TrackEarnings returns the lifetime amount accrued to beneficiaries of
// the specified track. Withdrawals do not reduce this figure, which
// keeps the number auditable.
func (l *Ledger) TrackEarnings(trackID uint64) uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.lifetime[trackID]
}

// WithdrawEarnings zeroes the beneficiary's balance for the track and
// returns the amount that must be paid out. The balance is zeroed
// before any token movement happens.
func (l *Ledger) WithdrawEarnings(trackID uint64, beneficiary account.AccountID) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	amount := l.earnings[trackID][beneficiary]
	if amount == 0 {
		return 0, fmt.Errorf("account %s on track %d: %w", beneficiary, trackID, ErrNothingToWithdraw)
	}

	delete(l.earnings[trackID], beneficiary)

	return amount, nil
}

// PlatformPool returns the current platform fee pool.
func (l *Ledger) PlatformPool() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.platformPool
}

// SweepPlatformPool zeroes the platform fee pool and returns the amount
// that must be paid out to the platform owner.
func (l *Ledger) SweepPlatformPool() (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	amount := l.platformPool
	if amount == 0 {
		return 0, ErrNothingToWithdraw
	}

	l.platformPool = 0

	return amount, nil
}
