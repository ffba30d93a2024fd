package state

import (
	"fmt"
	"time"

	"github.com/riffworks/riff/foundation/events"
	"github.com/riffworks/riff/foundation/riff/call"
	"github.com/riffworks/riff/foundation/riff/journal"
)

// SubmitContributorCall accepts a signed contributor add or configure.
func (s *State) SubmitContributorCall(signed call.SignedContributorCall) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.applyContributorCall(signed); err != nil {
		return err
	}

	caller, _ := signed.FromAccount()
	s.evHandler("state: contributor call accepted: kind[%s] caller[%s] track[%d] contributor[%s] bps[%d]",
		signed.Kind, caller, signed.TrackID, signed.Contributor, signed.PercentageBps)

	return s.appendRecord(
		journal.Record{
			TimeStamp:   uint64(time.Now().UTC().Unix()),
			Contributor: &signed,
		},
		events.Event{
			Kind:    "contributor:" + string(signed.Kind),
			Caller:  caller,
			TrackID: signed.TrackID,
		},
	)
}

// applyContributorCall validates and applies a contributor call. The
// state lock must be held.
func (s *State) applyContributorCall(signed call.SignedContributorCall) error {
	caller, err := s.validateCaller(signed, signed.Nonce)
	if err != nil {
		return err
	}

	switch signed.Kind {
	case call.ContributorAdd:
		if err := s.ledger.AddContributor(caller, signed.TrackID, signed.Contributor, signed.PercentageBps); err != nil {
			return err
		}

	case call.ContributorConfigure:
		if err := s.ledger.ConfigureContributor(caller, signed.TrackID, signed.Contributor, signed.PercentageBps); err != nil {
			return err
		}

	default:
		return fmt.Errorf("unrecognized contributor call kind %q", signed.Kind)
	}

	s.token.BumpNonce(caller)

	return nil
}
