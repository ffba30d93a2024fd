package ledger

import (
	"fmt"

	"github.com/riffworks/riff/foundation/riff/account"
)

// maxAllocationBps is the full allocation for a track. Whatever is not
// assigned to contributors implicitly belongs to the track owner.
const maxAllocationBps = 10000

// AddContributor stores a new revenue share on the specified track. The
// caller must own the track, the share must be a positive number of
// basis points, the contributor must not already hold a share, and the
// total allocation must stay within 10000 bps.
func (l *Ledger) AddContributor(caller account.AccountID, trackID uint64, contributor account.AccountID, percentageBps uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	track, exists := l.tracks[trackID]
	if !exists {
		return fmt.Errorf("track %d: %w", trackID, ErrNotFound)
	}

	if track.Owner != caller {
		return fmt.Errorf("account %s is not the owner of track %d: %w", caller, trackID, ErrUnauthorized)
	}

	if percentageBps == 0 || percentageBps > maxAllocationBps {
		return fmt.Errorf("share %d bps: %w", percentageBps, ErrInvalidPercentage)
	}

	var allocated uint64
	for _, share := range l.contributors[trackID] {
		if share.Account == contributor {
			return fmt.Errorf("account %s on track %d: %w", contributor, trackID, ErrDuplicateContributor)
		}
		allocated += share.PercentageBps
	}

	if allocated+percentageBps > maxAllocationBps {
		return fmt.Errorf("allocation %d bps would exceed %d: %w", allocated+percentageBps, maxAllocationBps, ErrInvalidPercentage)
	}

	l.contributors[trackID] = append(l.contributors[trackID], Contributor{
		Account:       contributor,
		PercentageBps: percentageBps,
	})

	return nil
}

// ConfigureContributor updates an existing revenue share in place. The
// recomputed total allocation must stay within 10000 bps. Configuring a
// share down releases allocation back to the owner's implicit share.
func (l *Ledger) ConfigureContributor(caller account.AccountID, trackID uint64, contributor account.AccountID, percentageBps uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	track, exists := l.tracks[trackID]
	if !exists {
		return fmt.Errorf("track %d: %w", trackID, ErrNotFound)
	}

	if track.Owner != caller {
		return fmt.Errorf("account %s is not the owner of track %d: %w", caller, trackID, ErrUnauthorized)
	}

	if percentageBps == 0 || percentageBps > maxAllocationBps {
		return fmt.Errorf("share %d bps: %w", percentageBps, ErrInvalidPercentage)
	}

	shares := l.contributors[trackID]

	idx := -1
	var allocated uint64
	for i, share := range shares {
		if share.Account == contributor {
			idx = i
			continue
		}
		allocated += share.PercentageBps
	}

	if idx == -1 {
		return fmt.Errorf("account %s on track %d: %w", contributor, trackID, ErrNotFound)
	}

	if allocated+percentageBps > maxAllocationBps {
		return fmt.Errorf("allocation %d bps would exceed %d: %w", allocated+percentageBps, maxAllocationBps, ErrInvalidPercentage)
	}

	shares[idx].PercentageBps = percentageBps

	return nil
}

// QueryContributors returns the ordered list of revenue shares for the
// specified track. Insertion order is preserved so the settlement split
// is deterministic.
func (l *Ledger) QueryContributors(trackID uint64) []Contributor {
	l.mu.RLock()
	defer l.mu.RUnlock()

	shares := make([]Contributor, len(l.contributors[trackID]))
	copy(shares, l.contributors[trackID])

	return shares
}

// OwnerShareBps derives the owner's implicit share for the specified
// track as whatever allocation contributors have not claimed.
func (l *Ledger) OwnerShareBps(trackID uint64) uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var allocated uint64
	for _, share := range l.contributors[trackID] {
		allocated += share.PercentageBps
	}

	return maxAllocationBps - allocated
}
