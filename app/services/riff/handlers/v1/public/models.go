package public

import (
	"github.com/riffworks/riff/foundation/nameservice"
	"github.com/riffworks/riff/foundation/riff/account"
	"github.com/riffworks/riff/foundation/riff/ledger"
	"github.com/riffworks/riff/foundation/riff/state"
)

type actInfo struct {
	Account account.AccountID `json:"account"`
	Name    string            `json:"name"`
	Balance uint64            `json:"balance"`
	Nonce   uint64            `json:"nonce"`
}

type accountsInfo struct {
	LatestSeq uint64    `json:"latest_seq"`
	Accounts  []actInfo `json:"accounts"`
}

type profileInfo struct {
	Account account.AccountID `json:"account"`
	Name    string            `json:"name"`
	Display string            `json:"display"`
	Bio     string            `json:"bio"`
}

type trackInfo struct {
	ID          uint64            `json:"id"`
	Owner       account.AccountID `json:"owner"`
	OwnerName   string            `json:"owner_name"`
	CID         string            `json:"cid"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Deleted     bool              `json:"deleted"`
	UploadedAt  uint64            `json:"uploaded_at"`
}

type contributorInfo struct {
	Account       account.AccountID `json:"account"`
	Name          string            `json:"name"`
	PercentageBps uint64            `json:"percentage_bps"`
}

type shareTable struct {
	TrackID       uint64            `json:"track_id"`
	OwnerShareBps uint64            `json:"owner_share_bps"`
	Contributors  []contributorInfo `json:"contributors"`
}

type commentInfo struct {
	Author    account.AccountID `json:"author"`
	Name      string            `json:"name"`
	Message   string            `json:"message"`
	TimeStamp uint64            `json:"timestamp"`
}

type creditInfo struct {
	Beneficiary account.AccountID `json:"beneficiary"`
	Name        string            `json:"name"`
	Amount      uint64            `json:"amount"`
}

type settlementInfo struct {
	TrackID     uint64            `json:"track_id"`
	Kind        string            `json:"kind"`
	Caller      account.AccountID `json:"caller"`
	CallerName  string            `json:"caller_name"`
	Fee         uint64            `json:"fee"`
	PlatformFee uint64            `json:"platform_fee"`
	Credits     []creditInfo      `json:"credits"`
	TimeStamp   uint64            `json:"timestamp"`
}

func toProfile(accountID account.AccountID, prof ledger.Profile, ns *nameservice.NameService) profileInfo {
	return profileInfo{
		Account: accountID,
		Name:    ns.Lookup(accountID),
		Display: prof.Name,
		Bio:     prof.Bio,
	}
}

func toTrack(trk ledger.Track, ns *nameservice.NameService) trackInfo {
	return trackInfo{
		ID:          trk.ID,
		Owner:       trk.Owner,
		OwnerName:   ns.Lookup(trk.Owner),
		CID:         trk.CID,
		Title:       trk.Title,
		Description: trk.Description,
		Deleted:     trk.Deleted,
		UploadedAt:  trk.UploadedAt,
	}
}

func toSettlement(stl state.Settlement, ns *nameservice.NameService) settlementInfo {
	credits := make([]creditInfo, len(stl.Credits))
	for i, c := range stl.Credits {
		credits[i] = creditInfo{
			Beneficiary: c.Beneficiary,
			Name:        ns.Lookup(c.Beneficiary),
			Amount:      c.Amount,
		}
	}

	return settlementInfo{
		TrackID:     stl.TrackID,
		Kind:        string(stl.Kind),
		Caller:      stl.Caller,
		CallerName:  ns.Lookup(stl.Caller),
		Fee:         stl.Fee,
		PlatformFee: stl.PlatformFee,
		Credits:     credits,
		TimeStamp:   stl.TimeStamp,
	}
}
