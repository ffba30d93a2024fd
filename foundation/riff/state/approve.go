package state

import (
	"time"

	"github.com/riffworks/riff/foundation/events"
	"github.com/riffworks/riff/foundation/riff/call"
	"github.com/riffworks/riff/foundation/riff/journal"
)

// SubmitApproveCall accepts a signed token approval granting a spender
// the right to pull from the caller's balance.
func (s *State) SubmitApproveCall(signed call.SignedApproveCall) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.applyApproveCall(signed); err != nil {
		return err
	}

	caller, _ := signed.FromAccount()
	s.evHandler("state: approve call accepted: caller[%s] spender[%s] amount[%d]", caller, signed.Spender, signed.Amount)

	return s.appendRecord(
		journal.Record{
			TimeStamp: uint64(time.Now().UTC().Unix()),
			Approve:   &signed,
		},
		events.Event{
			Kind:   "approve",
			Caller: caller,
			Amount: signed.Amount,
		},
	)
}

// applyApproveCall validates and applies an approve call. The state
// lock must be held.
func (s *State) applyApproveCall(signed call.SignedApproveCall) error {
	caller, err := s.validateCaller(signed, signed.Nonce)
	if err != nil {
		return err
	}

	s.token.Approve(caller, signed.Spender, signed.Amount)
	s.token.BumpNonce(caller)

	return nil
}
