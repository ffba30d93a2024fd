// Package state is the core API for the music revenue ledger and
// implements all the business rules and processing. Every public
// operation executes as one atomic unit: a failing precondition aborts
// the call with no partial state change.
package state

import (
	"fmt"
	"sync"

	"github.com/riffworks/riff/foundation/events"
	"github.com/riffworks/riff/foundation/riff/account"
	"github.com/riffworks/riff/foundation/riff/genesis"
	"github.com/riffworks/riff/foundation/riff/journal"
	"github.com/riffworks/riff/foundation/riff/ledger"
	"github.com/riffworks/riff/foundation/riff/token"
)

// EventHandler defines a function that is called when events occur in
// the processing of accepted calls.
type EventHandler func(v string, args ...any)

// EventSink defines a function that receives a typed event for every
// accepted call so it can be fanned out to connected clients.
type EventSink func(event events.Event)

// =============================================================================

// Config represents the configuration required to start the ledger node.
type Config struct {
	Genesis   genesis.Genesis
	Storage   journal.Store
	EvHandler EventHandler
	EventSink EventSink
}

// State manages the ledger, the token balances, and the journal.
type State struct {
	mu sync.Mutex

	genesis   genesis.Genesis
	owner     account.AccountID
	engine    account.AccountID
	evHandler EventHandler
	eventSink EventSink

	nextSeq uint64
	token   *token.Token
	ledger  *ledger.Ledger
	storage journal.Store
}

// New constructs a new state, replaying any existing journal records
// against the genesis state to rebuild the ledger.
func New(cfg Config) (*State, error) {

	// Build safe handler functions for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}
	sink := func(event events.Event) {
		if cfg.EventSink != nil {
			cfg.EventSink(event)
		}
	}

	owner, err := account.ToAccountID(cfg.Genesis.OwnerAccount)
	if err != nil {
		return nil, fmt.Errorf("invalid genesis owner account: %w", err)
	}

	engine, err := account.ToAccountID(cfg.Genesis.EngineAccount)
	if err != nil {
		return nil, fmt.Errorf("invalid genesis engine account: %w", err)
	}

	// Seed the token ledger with the genesis balances.
	tkn, err := token.New(cfg.Genesis.Balances)
	if err != nil {
		return nil, err
	}

	s := State{
		genesis:   cfg.Genesis,
		owner:     owner,
		engine:    engine,
		evHandler: ev,
		eventSink: sink,
		token:     tkn,
		ledger:    ledger.New(),
		storage:   cfg.Storage,
	}

	// Replay all existing records from the journal to rebuild the
	// ledger in memory. Every record was validated when it was first
	// accepted, so a replay failure means the journal is corrupt.
	iter := s.storage.ForEach()
	for record, err := iter.Next(); !iter.Done(); record, err = iter.Next() {
		if err != nil {
			return nil, err
		}

		if record.Seq != s.nextSeq+1 {
			return nil, fmt.Errorf("journal record out of order: got %d, expected %d", record.Seq, s.nextSeq+1)
		}

		if err := s.applyRecord(record); err != nil {
			return nil, fmt.Errorf("replaying journal record %d: %w", record.Seq, err)
		}

		s.nextSeq = record.Seq
		ev("state: replayed journal record: seq[%d]", record.Seq)
	}

	return &s, nil
}

// Shutdown cleanly brings the state down.
func (s *State) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.storage.Close()
}

// =============================================================================

// applyRecord dispatches a journal record to the op-specific apply
// function using the timestamp captured when the record was accepted.
func (s *State) applyRecord(record journal.Record) error {
	switch {
	case record.Profile != nil:
		return s.applyProfileCall(*record.Profile)

	case record.Track != nil:
		_, err := s.applyTrackCall(*record.Track, record.TimeStamp)
		return err

	case record.Contributor != nil:
		return s.applyContributorCall(*record.Contributor)

	case record.Approve != nil:
		return s.applyApproveCall(*record.Approve)

	case record.Action != nil:
		_, err := s.applyActionCall(*record.Action, record.TimeStamp)
		return err

	case record.Withdraw != nil:
		_, err := s.applyWithdrawCall(*record.Withdraw)
		return err
	}

	return fmt.Errorf("record %d carries no call", record.Seq)
}

// appendRecord durably stores an accepted call and hands the typed
// event to the sink. The state lock must be held.
func (s *State) appendRecord(record journal.Record, event events.Event) error {
	record.Seq = s.nextSeq + 1

	if err := s.storage.Append(record); err != nil {
		return fmt.Errorf("journal append: %w", err)
	}

	s.nextSeq = record.Seq

	event.Seq = record.Seq
	s.eventSink(event)

	return nil
}

// validateCaller performs the checks shared by every signed call: the
// signature must verify and the nonce must be the next one expected
// for the recovered account.
func (s *State) validateCaller(signed interface {
	Validate() error
	FromAccount() (account.AccountID, error)
}, nonce uint64,
) (account.AccountID, error) {
	if err := signed.Validate(); err != nil {
		return "", err
	}

	caller, err := signed.FromAccount()
	if err != nil {
		return "", err
	}

	if err := s.token.ValidateNonce(caller, nonce); err != nil {
		return "", err
	}

	return caller, nil
}
