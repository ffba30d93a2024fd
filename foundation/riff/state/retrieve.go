package state

import (
	"github.com/riffworks/riff/foundation/riff/account"
	"github.com/riffworks/riff/foundation/riff/genesis"
	"github.com/riffworks/riff/foundation/riff/journal"
	"github.com/riffworks/riff/foundation/riff/ledger"
	"github.com/riffworks/riff/foundation/riff/token"
)

// RetrieveGenesis returns a copy of the genesis information.
func (s *State) RetrieveGenesis() genesis.Genesis {
	return s.genesis
}

// RetrieveLatestSeq returns the sequence number of the most recently
// accepted call.
func (s *State) RetrieveLatestSeq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.nextSeq
}

// RetrieveAccounts returns a copy of the token information for all
// accounts.
func (s *State) RetrieveAccounts() map[account.AccountID]token.Info {
	return s.token.Copy()
}

// QueryAccount returns the token information for the specified account.
func (s *State) QueryAccount(accountID account.AccountID) token.Info {
	return s.token.Query(accountID)
}

// QueryAllowance returns the amount the spender may still pull from the
// owner's balance.
func (s *State) QueryAllowance(owner account.AccountID, spender account.AccountID) uint64 {
	return s.token.Allowance(owner, spender)
}

// QueryProfile returns the profile for the specified account. An empty
// name means the account never registered.
func (s *State) QueryProfile(accountID account.AccountID) ledger.Profile {
	return s.ledger.QueryProfile(accountID)
}

// QueryTrack returns the track record including its deleted status.
func (s *State) QueryTrack(trackID uint64) (ledger.Track, error) {
	return s.ledger.QueryTrack(trackID)
}

// RetrieveTracks returns a copy of every track record ordered by id.
func (s *State) RetrieveTracks() []ledger.Track {
	return s.ledger.CopyTracks()
}

// QueryContributors returns the ordered revenue-share list for the
// specified track.
func (s *State) QueryContributors(trackID uint64) []ledger.Contributor {
	return s.ledger.QueryContributors(trackID)
}

// QueryOwnerShareBps returns the owner's implicit share for the
// specified track.
func (s *State) QueryOwnerShareBps(trackID uint64) uint64 {
	return s.ledger.OwnerShareBps(trackID)
}

// QueryComments returns the append-only comment list for the track.
func (s *State) QueryComments(trackID uint64) []ledger.Comment {
	return s.ledger.QueryComments(trackID)
}

// QueryTrackEarnings returns the lifetime amount accrued to the
// beneficiaries of the specified track.
func (s *State) QueryTrackEarnings(trackID uint64) uint64 {
	return s.ledger.TrackEarnings(trackID)
}

// QueryEarningsBalance returns the accrued, unwithdrawn balance for the
// specified beneficiary on the specified track.
func (s *State) QueryEarningsBalance(trackID uint64, beneficiary account.AccountID) uint64 {
	return s.ledger.EarningsBalance(trackID, beneficiary)
}

// QueryPlatformPool returns the current platform fee pool.
func (s *State) QueryPlatformPool() uint64 {
	return s.ledger.PlatformPool()
}

// QueryJournal returns the journal records in the specified inclusive
// sequence range.
func (s *State) QueryJournal(from uint64, to uint64) ([]journal.Record, error) {
	if from == 0 {
		from = 1
	}

	var records []journal.Record
	for seq := from; seq <= to; seq++ {
		record, err := s.storage.GetRecord(seq)
		if err != nil {
			break
		}
		records = append(records, record)
	}

	return records, nil
}
