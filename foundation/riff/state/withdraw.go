package state

import (
	"fmt"
	"time"

	"github.com/riffworks/riff/foundation/events"
	"github.com/riffworks/riff/foundation/riff/call"
	"github.com/riffworks/riff/foundation/riff/journal"
	"github.com/riffworks/riff/foundation/riff/ledger"
)

// SubmitWithdrawCall accepts a signed withdrawal and returns the amount
// paid out. Earnings withdrawals pay out the caller's accrued balance
// for a track; platform withdrawals sweep the platform fee pool and are
// only honored for the genesis owner.
func (s *State) SubmitWithdrawCall(signed call.SignedWithdrawCall) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	amount, err := s.applyWithdrawCall(signed)
	if err != nil {
		return 0, err
	}

	caller, _ := signed.FromAccount()
	s.evHandler("state: withdraw accepted: kind[%s] caller[%s] track[%d] amount[%d]", signed.Kind, caller, signed.TrackID, amount)

	err = s.appendRecord(
		journal.Record{
			TimeStamp: uint64(time.Now().UTC().Unix()),
			Withdraw:  &signed,
		},
		events.Event{
			Kind:    "withdraw:" + string(signed.Kind),
			Caller:  caller,
			TrackID: signed.TrackID,
			Amount:  amount,
		},
	)
	if err != nil {
		return 0, err
	}

	return amount, nil
}

// applyWithdrawCall validates and applies a withdrawal. The accrued
// balance is zeroed before the token transfer happens, which is the
// guard that makes the payout safe against reentrant calls regardless
// of how the token layer behaves. The state lock must be held.
func (s *State) applyWithdrawCall(signed call.SignedWithdrawCall) (uint64, error) {
	caller, err := s.validateCaller(signed, signed.Nonce)
	if err != nil {
		return 0, err
	}

	var amount uint64

	switch signed.Kind {
	case call.WithdrawEarnings:
		amount, err = s.ledger.WithdrawEarnings(signed.TrackID, caller)
		if err != nil {
			return 0, err
		}

	case call.WithdrawPlatform:
		if caller != s.owner {
			return 0, fmt.Errorf("account %s is not the platform owner: %w", caller, ledger.ErrUnauthorized)
		}

		amount, err = s.ledger.SweepPlatformPool()
		if err != nil {
			return 0, err
		}

	default:
		return 0, fmt.Errorf("unrecognized withdraw call kind %q", signed.Kind)
	}

	// The engine escrow always covers accrued balances, so this
	// transfer cannot fail once the balance is zeroed.
	if err := s.token.Transfer(s.engine, caller, amount); err != nil {
		return 0, err
	}

	s.token.BumpNonce(caller)

	return amount, nil
}
