package ledger_test

import (
	"errors"
	"testing"

	"github.com/riffworks/riff/foundation/riff/account"
	"github.com/riffworks/riff/foundation/riff/call"
	"github.com/riffworks/riff/foundation/riff/ledger"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

const (
	artist      = account.AccountID("0xdd6B972ffcc631a62CAE1BB9d80b7ff429c8ebA4")
	listener    = account.AccountID("0xF01813E4B85e178A83e29B8E7bF26BD830a25f32")
	contributor = account.AccountID("0xFef311483Cc040e1A89fb9bb469eeB8A70935EF8")
)

// =============================================================================

func Test_Profiles(t *testing.T) {
	t.Log("Given the need to maintain one profile per account.")
	{
		l := ledger.New()

		if err := l.RegisterProfile(artist, "Frequency", "late night loops"); err != nil {
			t.Fatalf("\t%s\tTest 0:\tShould be able to register a profile: %v", failed, err)
		}
		t.Logf("\t%s\tTest 0:\tShould be able to register a profile.", success)

		if err := l.RegisterProfile(artist, "Again", "nope"); !errors.Is(err, ledger.ErrAlreadyRegistered) {
			t.Fatalf("\t%s\tTest 0:\tShould reject a second registration: %v", failed, err)
		}
		t.Logf("\t%s\tTest 0:\tShould reject a second registration.", success)

		if err := l.UpdateProfile(listener, "Ghost", ""); !errors.Is(err, ledger.ErrNotRegistered) {
			t.Fatalf("\t%s\tTest 0:\tShould reject an update for an unregistered account: %v", failed, err)
		}
		t.Logf("\t%s\tTest 0:\tShould reject an update for an unregistered account.", success)

		if err := l.UpdateProfile(artist, "Frequency", "new bio"); err != nil {
			t.Fatalf("\t%s\tTest 0:\tShould be able to update a profile: %v", failed, err)
		}
		if got := l.QueryProfile(artist); got.Bio != "new bio" {
			t.Fatalf("\t%s\tTest 0:\tShould see the updated bio: got %q.", failed, got.Bio)
		}
		t.Logf("\t%s\tTest 0:\tShould be able to update a profile in place.", success)

		if got := l.QueryProfile(listener); got.Name != "" {
			t.Fatalf("\t%s\tTest 0:\tShould see an empty profile for an absent account: got %q.", failed, got.Name)
		}
		t.Logf("\t%s\tTest 0:\tShould see an empty profile for an absent account.", success)
	}
}

func Test_Tracks(t *testing.T) {
	t.Log("Given the need to manage the track catalog.")
	{
		l := ledger.New()

		if _, err := l.UploadTrack(artist, "cid123", "Song Title", "first song", 100); !errors.Is(err, ledger.ErrNotRegistered) {
			t.Fatalf("\t%s\tTest 0:\tShould reject an upload without a profile: %v", failed, err)
		}
		t.Logf("\t%s\tTest 0:\tShould reject an upload without a profile.", success)

		if err := l.RegisterProfile(artist, "Frequency", "bio"); err != nil {
			t.Fatalf("\t%s\tTest 0:\tShould be able to register a profile: %v", failed, err)
		}

		trackID, err := l.UploadTrack(artist, "cid123", "Song Title", "first song", 100)
		if err != nil {
			t.Fatalf("\t%s\tTest 0:\tShould be able to upload a track: %v", failed, err)
		}
		if trackID != 1 {
			t.Fatalf("\t%s\tTest 0:\tShould allocate track id 1: got %d.", failed, trackID)
		}
		t.Logf("\t%s\tTest 0:\tShould allocate the first sequential track id.", success)

		second, err := l.UploadTrack(artist, "cid456", "Second", "", 101)
		if err != nil {
			t.Fatalf("\t%s\tTest 0:\tShould be able to upload a second track: %v", failed, err)
		}
		if second != 2 {
			t.Fatalf("\t%s\tTest 0:\tShould allocate track id 2: got %d.", failed, second)
		}
		t.Logf("\t%s\tTest 0:\tShould allocate monotonic track ids.", success)

		track, err := l.QueryTrack(trackID)
		if err != nil || track.Deleted {
			t.Fatalf("\t%s\tTest 0:\tShould see a live track after upload.", failed)
		}
		t.Logf("\t%s\tTest 0:\tShould see a live track after upload.", success)

		if err := l.DeleteTrack(listener, trackID); !errors.Is(err, ledger.ErrUnauthorized) {
			t.Fatalf("\t%s\tTest 0:\tShould reject a delete by a non-owner: %v", failed, err)
		}
		track, _ = l.QueryTrack(trackID)
		if track.Deleted {
			t.Fatalf("\t%s\tTest 0:\tShould leave state unchanged on a rejected delete.", failed)
		}
		t.Logf("\t%s\tTest 0:\tShould reject a delete by a non-owner and leave state unchanged.", success)

		if err := l.DeleteTrack(artist, 99); !errors.Is(err, ledger.ErrNotFound) {
			t.Fatalf("\t%s\tTest 0:\tShould reject a delete for an unknown track: %v", failed, err)
		}
		t.Logf("\t%s\tTest 0:\tShould reject a delete for an unknown track.", success)

		if err := l.DeleteTrack(artist, trackID); err != nil {
			t.Fatalf("\t%s\tTest 0:\tShould be able to delete an owned track: %v", failed, err)
		}
		track, err = l.QueryTrack(trackID)
		if err != nil || !track.Deleted {
			t.Fatalf("\t%s\tTest 0:\tShould see the deleted flag after delete.", failed)
		}
		t.Logf("\t%s\tTest 0:\tShould soft delete and keep the record addressable.", success)
	}
}

func Test_Contributors(t *testing.T) {
	t.Log("Given the need to keep contributor allocation within 10000 bps.")
	{
		l := ledger.New()
		if err := l.RegisterProfile(artist, "Frequency", "bio"); err != nil {
			t.Fatalf("\t%s\tTest 0:\tShould be able to register a profile: %v", failed, err)
		}
		trackID, err := l.UploadTrack(artist, "cid", "Title", "", 100)
		if err != nil {
			t.Fatalf("\t%s\tTest 0:\tShould be able to upload a track: %v", failed, err)
		}

		if err := l.AddContributor(listener, trackID, contributor, 1000); !errors.Is(err, ledger.ErrUnauthorized) {
			t.Fatalf("\t%s\tTest 0:\tShould reject an add by a non-owner: %v", failed, err)
		}
		t.Logf("\t%s\tTest 0:\tShould reject an add by a non-owner.", success)

		if err := l.AddContributor(artist, trackID, contributor, 0); !errors.Is(err, ledger.ErrInvalidPercentage) {
			t.Fatalf("\t%s\tTest 0:\tShould reject a zero share: %v", failed, err)
		}
		t.Logf("\t%s\tTest 0:\tShould reject a zero share.", success)

		if err := l.AddContributor(artist, trackID, contributor, 6000); err != nil {
			t.Fatalf("\t%s\tTest 0:\tShould be able to add a contributor: %v", failed, err)
		}
		t.Logf("\t%s\tTest 0:\tShould be able to add a contributor.", success)

		if err := l.AddContributor(artist, trackID, contributor, 1000); !errors.Is(err, ledger.ErrDuplicateContributor) {
			t.Fatalf("\t%s\tTest 0:\tShould reject a duplicate contributor: %v", failed, err)
		}
		t.Logf("\t%s\tTest 0:\tShould reject a duplicate contributor.", success)

		if err := l.AddContributor(artist, trackID, listener, 5000); !errors.Is(err, ledger.ErrInvalidPercentage) {
			t.Fatalf("\t%s\tTest 0:\tShould reject allocation past 10000 bps: %v", failed, err)
		}
		t.Logf("\t%s\tTest 0:\tShould reject allocation past 10000 bps.", success)

		if err := l.ConfigureContributor(artist, trackID, listener, 1000); !errors.Is(err, ledger.ErrNotFound) {
			t.Fatalf("\t%s\tTest 0:\tShould reject configuring an absent share: %v", failed, err)
		}
		t.Logf("\t%s\tTest 0:\tShould reject configuring an absent share.", success)

		if err := l.ConfigureContributor(artist, trackID, contributor, 1500); err != nil {
			t.Fatalf("\t%s\tTest 0:\tShould be able to configure a share down: %v", failed, err)
		}
		shares := l.QueryContributors(trackID)
		if len(shares) != 1 || shares[0].PercentageBps != 1500 {
			t.Fatalf("\t%s\tTest 0:\tShould see the configured share in place.", failed)
		}
		t.Logf("\t%s\tTest 0:\tShould see the configured share in place.", success)

		if got := l.OwnerShareBps(trackID); got != 8500 {
			t.Fatalf("\t%s\tTest 0:\tShould derive the owner's implicit share: got %d, exp %d.", failed, got, 8500)
		}
		t.Logf("\t%s\tTest 0:\tShould derive the owner's implicit share.", success)
	}
}

func Test_Settlement(t *testing.T) {
	type table struct {
		name        string
		shares      map[account.AccountID]uint64
		fee         uint64
		platformBps uint64
		final       map[account.AccountID]uint64
		platform    uint64
	}

	tt := []table{
		{
			name:        "even-split",
			shares:      map[account.AccountID]uint64{contributor: 5000},
			fee:         100,
			platformBps: 0,
			final:       map[account.AccountID]uint64{contributor: 50, artist: 50},
			platform:    0,
		},
		{
			name:        "remainder-to-owner",
			shares:      map[account.AccountID]uint64{contributor: 3333},
			fee:         101,
			platformBps: 0,
			final:       map[account.AccountID]uint64{contributor: 33, artist: 68},
			platform:    0,
		},
		{
			name:        "platform-cut-off-the-top",
			shares:      map[account.AccountID]uint64{contributor: 5000},
			fee:         1000,
			platformBps: 250,
			final:       map[account.AccountID]uint64{contributor: 487, artist: 488},
			platform:    25,
		},
		{
			name:        "no-contributors",
			shares:      nil,
			fee:         77,
			platformBps: 0,
			final:       map[account.AccountID]uint64{artist: 77},
			platform:    0,
		},
	}

	t.Log("Given the need to split settled fees by basis points.")
	{
		for testID, tst := range tt {
			f := func(t *testing.T) {
				l := ledger.New()
				if err := l.RegisterProfile(artist, "Frequency", "bio"); err != nil {
					t.Fatalf("\t%s\tTest %d:\tShould be able to register a profile: %v", failed, testID, err)
				}
				trackID, err := l.UploadTrack(artist, "cid", "Title", "", 100)
				if err != nil {
					t.Fatalf("\t%s\tTest %d:\tShould be able to upload a track: %v", failed, testID, err)
				}

				for acct, bps := range tst.shares {
					if err := l.AddContributor(artist, trackID, acct, bps); err != nil {
						t.Fatalf("\t%s\tTest %d:\tShould be able to add a contributor: %v", failed, testID, err)
					}
				}

				if err := l.CheckAction(trackID, call.ActionPlay, ""); err != nil {
					t.Fatalf("\t%s\tTest %d:\tShould validate the play action: %v", failed, testID, err)
				}

				credits, platform := l.ApplySettlement(listener, trackID, call.ActionPlay, "", tst.fee, tst.platformBps, 200)

				if platform != tst.platform {
					t.Fatalf("\t%s\tTest %d:\tShould take the platform cut: got %d, exp %d.", failed, testID, platform, tst.platform)
				}
				t.Logf("\t%s\tTest %d:\tShould take the platform cut.", success, testID)

				var total uint64
				for _, credit := range credits {
					total += credit.Amount
					exp, exists := tst.final[credit.Beneficiary]
					if !exists {
						t.Fatalf("\t%s\tTest %d:\tShould only credit known beneficiaries: %s.", failed, testID, credit.Beneficiary)
					}
					if credit.Amount != exp {
						t.Fatalf("\t%s\tTest %d:\tShould credit %s correctly: got %d, exp %d.", failed, testID, credit.Beneficiary, credit.Amount, exp)
					}
				}
				t.Logf("\t%s\tTest %d:\tShould credit every beneficiary correctly.", success, testID)

				if total+platform != tst.fee {
					t.Fatalf("\t%s\tTest %d:\tShould conserve the fee: distributed %d + platform %d != %d.", failed, testID, total, platform, tst.fee)
				}
				t.Logf("\t%s\tTest %d:\tShould conserve the fee.", success, testID)

				for acct, exp := range tst.final {
					if got := l.EarningsBalance(trackID, acct); got != exp {
						t.Fatalf("\t%s\tTest %d:\tShould accrue the balance for %s: got %d, exp %d.", failed, testID, acct, got, exp)
					}
				}
				t.Logf("\t%s\tTest %d:\tShould accrue every balance.", success, testID)

				if got := l.TrackEarnings(trackID); got != tst.fee-tst.platform {
					t.Fatalf("\t%s\tTest %d:\tShould accrue lifetime earnings: got %d, exp %d.", failed, testID, got, tst.fee-tst.platform)
				}
				t.Logf("\t%s\tTest %d:\tShould accrue lifetime earnings.", success, testID)
			}

			t.Run(tst.name, f)
		}
	}
}

func Test_ActionRules(t *testing.T) {
	t.Log("Given the need to validate actions before settlement.")
	{
		l := ledger.New()
		if err := l.RegisterProfile(artist, "Frequency", "bio"); err != nil {
			t.Fatalf("\t%s\tTest 0:\tShould be able to register a profile: %v", failed, err)
		}
		trackID, err := l.UploadTrack(artist, "cid", "Title", "", 100)
		if err != nil {
			t.Fatalf("\t%s\tTest 0:\tShould be able to upload a track: %v", failed, err)
		}

		if err := l.CheckAction(99, call.ActionPlay, ""); !errors.Is(err, ledger.ErrNotFound) {
			t.Fatalf("\t%s\tTest 0:\tShould reject an action on an unknown track: %v", failed, err)
		}
		t.Logf("\t%s\tTest 0:\tShould reject an action on an unknown track.", success)

		if err := l.CheckAction(trackID, call.ActionComment, ""); !errors.Is(err, ledger.ErrEmptyMessage) {
			t.Fatalf("\t%s\tTest 0:\tShould reject a comment with an empty message: %v", failed, err)
		}
		if got := len(l.QueryComments(trackID)); got != 0 {
			t.Fatalf("\t%s\tTest 0:\tShould leave the comment list unchanged: got %d.", failed, got)
		}
		t.Logf("\t%s\tTest 0:\tShould reject an empty comment and leave the list unchanged.", success)

		if err := l.CheckAction(trackID, call.ActionPlay, "sneaky"); !errors.Is(err, ledger.ErrInvalidPayload) {
			t.Fatalf("\t%s\tTest 0:\tShould reject a play carrying a message: %v", failed, err)
		}
		t.Logf("\t%s\tTest 0:\tShould reject a play carrying a message.", success)

		if err := l.CheckAction(trackID, call.ActionKind("remix"), ""); !errors.Is(err, ledger.ErrUnknownAction) {
			t.Fatalf("\t%s\tTest 0:\tShould reject an unknown action kind: %v", failed, err)
		}
		t.Logf("\t%s\tTest 0:\tShould reject an unknown action kind.", success)

		l.ApplySettlement(listener, trackID, call.ActionComment, "nice track", 30, 0, 200)
		comments := l.QueryComments(trackID)
		if len(comments) != 1 || comments[0].Message != "nice track" || comments[0].Author != listener {
			t.Fatalf("\t%s\tTest 0:\tShould append the comment record on settlement.", failed)
		}
		t.Logf("\t%s\tTest 0:\tShould append the comment record on settlement.", success)

		if err := l.DeleteTrack(artist, trackID); err != nil {
			t.Fatalf("\t%s\tTest 0:\tShould be able to delete the track: %v", failed, err)
		}
		if err := l.CheckAction(trackID, call.ActionPlay, ""); !errors.Is(err, ledger.ErrTrackDeleted) {
			t.Fatalf("\t%s\tTest 0:\tShould reject an action on a deleted track: %v", failed, err)
		}
		t.Logf("\t%s\tTest 0:\tShould reject an action on a deleted track.", success)
	}
}

func Test_Withdrawal(t *testing.T) {
	t.Log("Given the need to pay out accrued balances exactly once.")
	{
		l := ledger.New()
		if err := l.RegisterProfile(artist, "Frequency", "bio"); err != nil {
			t.Fatalf("\t%s\tTest 0:\tShould be able to register a profile: %v", failed, err)
		}
		trackID, err := l.UploadTrack(artist, "cid", "Title", "", 100)
		if err != nil {
			t.Fatalf("\t%s\tTest 0:\tShould be able to upload a track: %v", failed, err)
		}

		l.ApplySettlement(listener, trackID, call.ActionLike, "", 200, 500, 150)

		amount, err := l.WithdrawEarnings(trackID, artist)
		if err != nil {
			t.Fatalf("\t%s\tTest 0:\tShould be able to withdraw accrued earnings: %v", failed, err)
		}
		if amount != 190 {
			t.Fatalf("\t%s\tTest 0:\tShould withdraw the full balance: got %d, exp %d.", failed, amount, 190)
		}
		t.Logf("\t%s\tTest 0:\tShould withdraw the full accrued balance.", success)

		if _, err := l.WithdrawEarnings(trackID, artist); !errors.Is(err, ledger.ErrNothingToWithdraw) {
			t.Fatalf("\t%s\tTest 0:\tShould reject an immediate second withdrawal: %v", failed, err)
		}
		t.Logf("\t%s\tTest 0:\tShould reject an immediate second withdrawal.", success)

		if got := l.TrackEarnings(trackID); got != 190 {
			t.Fatalf("\t%s\tTest 0:\tShould keep lifetime earnings after withdrawal: got %d, exp %d.", failed, got, 190)
		}
		t.Logf("\t%s\tTest 0:\tShould keep lifetime earnings after withdrawal.", success)

		amount, err = l.SweepPlatformPool()
		if err != nil {
			t.Fatalf("\t%s\tTest 0:\tShould be able to sweep the platform pool: %v", failed, err)
		}
		if amount != 10 {
			t.Fatalf("\t%s\tTest 0:\tShould sweep the platform cut: got %d, exp %d.", failed, amount, 10)
		}
		t.Logf("\t%s\tTest 0:\tShould sweep the platform cut.", success)

		if _, err := l.SweepPlatformPool(); !errors.Is(err, ledger.ErrNothingToWithdraw) {
			t.Fatalf("\t%s\tTest 0:\tShould reject a sweep of an empty pool: %v", failed, err)
		}
		t.Logf("\t%s\tTest 0:\tShould reject a sweep of an empty pool.", success)
	}
}
