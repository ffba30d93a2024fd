package state

import (
	"fmt"
	"time"

	"github.com/riffworks/riff/foundation/events"
	"github.com/riffworks/riff/foundation/riff/account"
	"github.com/riffworks/riff/foundation/riff/call"
	"github.com/riffworks/riff/foundation/riff/journal"
	"github.com/riffworks/riff/foundation/riff/ledger"
)

// Settlement represents the result of one accepted fan action.
type Settlement struct {
	TrackID     uint64            `json:"track_id"`
	Kind        call.ActionKind   `json:"kind"`
	Caller      account.AccountID `json:"caller"`
	Fee         uint64            `json:"fee"`
	PlatformFee uint64            `json:"platform_fee"`
	Credits     []ledger.Credit   `json:"credits"`
	TimeStamp   uint64            `json:"timestamp"`
}

// SubmitActionCall accepts a signed fan action: it pulls the fee from
// the caller's token balance and splits it across the platform, the
// track's contributors, and the track owner.
func (s *State) SubmitActionCall(signed call.SignedActionCall) (Settlement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := uint64(time.Now().UTC().Unix())

	settlement, err := s.applyActionCall(signed, now)
	if err != nil {
		return Settlement{}, err
	}

	s.evHandler("state: action settled: kind[%s] caller[%s] track[%d] fee[%d] platform[%d]",
		signed.Kind, settlement.Caller, signed.TrackID, settlement.Fee, settlement.PlatformFee)

	err = s.appendRecord(
		journal.Record{
			TimeStamp: now,
			Action:    &signed,
		},
		events.Event{
			Kind:    "action",
			Caller:  settlement.Caller,
			TrackID: signed.TrackID,
			Action:  string(signed.Kind),
			Amount:  settlement.Fee,
		},
	)
	if err != nil {
		return Settlement{}, err
	}

	return settlement, nil
}

// applyActionCall validates and settles a fan action. All preconditions
// are checked before any state is mutated so a failure aborts the call
// with no partial writes. The state lock must be held.
func (s *State) applyActionCall(signed call.SignedActionCall, timestamp uint64) (Settlement, error) {
	caller, err := s.validateCaller(signed, signed.Nonce)
	if err != nil {
		return Settlement{}, err
	}

	// Resolve the track and validate the payload rules for the kind.
	if err := s.ledger.CheckAction(signed.TrackID, signed.Kind, signed.Message); err != nil {
		return Settlement{}, err
	}

	// Resolve the fee for the action kind.
	fee, ok := s.genesis.ActionFee(string(signed.Kind))
	if !ok {
		return Settlement{}, fmt.Errorf("action %q: %w", signed.Kind, ledger.ErrUnknownAction)
	}

	// Make sure the fee can be pulled before anything is written.
	if err := s.token.CheckTransferFrom(caller, s.engine, fee); err != nil {
		return Settlement{}, err
	}

	// Every precondition holds. Pull the fee into the engine escrow and
	// split it. None of these steps can fail now.
	if err := s.token.TransferFrom(caller, s.engine, s.engine, fee); err != nil {
		return Settlement{}, err
	}

	credits, platform := s.ledger.ApplySettlement(caller, signed.TrackID, signed.Kind, signed.Message, fee, s.genesis.PlatformFeeBps, timestamp)

	s.token.BumpNonce(caller)

	settlement := Settlement{
		TrackID:     signed.TrackID,
		Kind:        signed.Kind,
		Caller:      caller,
		Fee:         fee,
		PlatformFee: platform,
		Credits:     credits,
		TimeStamp:   timestamp,
	}

	return settlement, nil
}
