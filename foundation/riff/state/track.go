package state

import (
	"fmt"
	"time"

	"github.com/riffworks/riff/foundation/events"
	"github.com/riffworks/riff/foundation/riff/call"
	"github.com/riffworks/riff/foundation/riff/journal"
)

// SubmitTrackCall accepts a signed track upload or delete. For uploads
// the newly allocated track id is returned.
func (s *State) SubmitTrackCall(signed call.SignedTrackCall) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := uint64(time.Now().UTC().Unix())

	trackID, err := s.applyTrackCall(signed, now)
	if err != nil {
		return 0, err
	}

	caller, _ := signed.FromAccount()
	s.evHandler("state: track call accepted: kind[%s] caller[%s] track[%d]", signed.Kind, caller, trackID)

	err = s.appendRecord(
		journal.Record{
			TimeStamp: now,
			Track:     &signed,
		},
		events.Event{
			Kind:    "track:" + string(signed.Kind),
			Caller:  caller,
			TrackID: trackID,
		},
	)
	if err != nil {
		return 0, err
	}

	return trackID, nil
}

// applyTrackCall validates and applies a track call, returning the
// track id the call operated on. The state lock must be held.
func (s *State) applyTrackCall(signed call.SignedTrackCall, timestamp uint64) (uint64, error) {
	caller, err := s.validateCaller(signed, signed.Nonce)
	if err != nil {
		return 0, err
	}

	var trackID uint64

	switch signed.Kind {
	case call.TrackUpload:
		trackID, err = s.ledger.UploadTrack(caller, signed.CID, signed.Title, signed.Description, timestamp)
		if err != nil {
			return 0, err
		}

	case call.TrackDelete:
		trackID = signed.TrackID
		if err := s.ledger.DeleteTrack(caller, trackID); err != nil {
			return 0, err
		}

	default:
		return 0, fmt.Errorf("unrecognized track call kind %q", signed.Kind)
	}

	s.token.BumpNonce(caller)

	return trackID, nil
}
