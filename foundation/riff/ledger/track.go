package ledger

import (
	"fmt"
	"sort"

	"github.com/riffworks/riff/foundation/riff/account"
)

// UploadTrack allocates the next track id and stores the track record
// for the specified owner. The owner must have a registered profile.
func (l *Ledger) UploadTrack(owner account.AccountID, cid string, title string, description string, timestamp uint64) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.profiles[owner]; !exists {
		return 0, fmt.Errorf("account %s: %w", owner, ErrNotRegistered)
	}

	l.nextTrackID++
	trackID := l.nextTrackID

	l.tracks[trackID] = Track{
		ID:          trackID,
		Owner:       owner,
		CID:         cid,
		Title:       title,
		Description: description,
		UploadedAt:  timestamp,
	}

	return trackID, nil
}

// DeleteTrack flips the soft-delete flag on the specified track. Only
// the track owner may delete. Earnings and contributor data remain.
func (l *Ledger) DeleteTrack(caller account.AccountID, trackID uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	track, exists := l.tracks[trackID]
	if !exists {
		return fmt.Errorf("track %d: %w", trackID, ErrNotFound)
	}

	if track.Owner != caller {
		return fmt.Errorf("account %s is not the owner of track %d: %w", caller, trackID, ErrUnauthorized)
	}

	track.Deleted = true
	l.tracks[trackID] = track

	return nil
}

// QueryTrack returns the track record including its deleted status.
func (l *Ledger) QueryTrack(trackID uint64) (Track, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	track, exists := l.tracks[trackID]
	if !exists {
		return Track{}, fmt.Errorf("track %d: %w", trackID, ErrNotFound)
	}

	return track, nil
}

// CopyTracks returns a copy of every track record ordered by id.
func (l *Ledger) CopyTracks() []Track {
	l.mu.RLock()
	defer l.mu.RUnlock()

	tracks := make([]Track, 0, len(l.tracks))
	for _, track := range l.tracks {
		tracks = append(tracks, track)
	}

	sort.Slice(tracks, func(i, j int) bool {
		return tracks[i].ID < tracks[j].ID
	})

	return tracks
}
