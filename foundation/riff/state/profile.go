package state

import (
	"fmt"
	"time"

	"github.com/riffworks/riff/foundation/events"
	"github.com/riffworks/riff/foundation/riff/call"
	"github.com/riffworks/riff/foundation/riff/journal"
)

// SubmitProfileCall accepts a signed profile registration or update.
func (s *State) SubmitProfileCall(signed call.SignedProfileCall) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.applyProfileCall(signed); err != nil {
		return err
	}

	caller, _ := signed.FromAccount()
	s.evHandler("state: profile call accepted: kind[%s] caller[%s]", signed.Kind, caller)

	return s.appendRecord(
		journal.Record{
			TimeStamp: uint64(time.Now().UTC().Unix()),
			Profile:   &signed,
		},
		events.Event{
			Kind:   "profile:" + string(signed.Kind),
			Caller: caller,
		},
	)
}

// applyProfileCall validates and applies a profile call. The state lock
// must be held.
func (s *State) applyProfileCall(signed call.SignedProfileCall) error {
	caller, err := s.validateCaller(signed, signed.Nonce)
	if err != nil {
		return err
	}

	switch signed.Kind {
	case call.ProfileRegister:
		if err := s.ledger.RegisterProfile(caller, signed.Name, signed.Bio); err != nil {
			return err
		}

	case call.ProfileUpdate:
		if err := s.ledger.UpdateProfile(caller, signed.Name, signed.Bio); err != nil {
			return err
		}

	default:
		return fmt.Errorf("unrecognized profile call kind %q", signed.Kind)
	}

	s.token.BumpNonce(caller)

	return nil
}
