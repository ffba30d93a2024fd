package token_test

import (
	"errors"
	"testing"

	"github.com/riffworks/riff/foundation/riff/account"
	"github.com/riffworks/riff/foundation/riff/token"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

const (
	fan    = account.AccountID("0xdd6B972ffcc631a62CAE1BB9d80b7ff429c8ebA4")
	engine = account.AccountID("0xF01813E4B85e178A83e29B8E7bF26BD830a25f32")
	artist = account.AccountID("0xFef311483Cc040e1A89fb9bb469eeB8A70935EF8")
)

// =============================================================================

func Test_TransferFrom(t *testing.T) {
	t.Log("Given the need to pull fees through approvals.")
	{
		tkn, err := token.New(map[string]uint64{string(fan): 1000})
		if err != nil {
			t.Fatalf("\t%s\tTest 0:\tShould be able to construct the token ledger: %v", failed, err)
		}
		t.Logf("\t%s\tTest 0:\tShould be able to construct the token ledger.", success)

		if err := tkn.TransferFrom(fan, engine, engine, 100); !errors.Is(err, token.ErrInsufficientAllowance) {
			t.Fatalf("\t%s\tTest 0:\tShould reject a pull without an approval: %v", failed, err)
		}
		t.Logf("\t%s\tTest 0:\tShould reject a pull without an approval.", success)

		tkn.Approve(fan, engine, 250)

		if err := tkn.TransferFrom(fan, engine, engine, 100); err != nil {
			t.Fatalf("\t%s\tTest 0:\tShould be able to pull within the allowance: %v", failed, err)
		}
		t.Logf("\t%s\tTest 0:\tShould be able to pull within the allowance.", success)

		if got := tkn.BalanceOf(fan); got != 900 {
			t.Fatalf("\t%s\tTest 0:\tShould debit the owner: got %d, exp %d.", failed, got, 900)
		}
		if got := tkn.BalanceOf(engine); got != 100 {
			t.Fatalf("\t%s\tTest 0:\tShould credit the engine: got %d, exp %d.", failed, got, 100)
		}
		if got := tkn.Allowance(fan, engine); got != 150 {
			t.Fatalf("\t%s\tTest 0:\tShould reduce the allowance: got %d, exp %d.", failed, got, 150)
		}
		t.Logf("\t%s\tTest 0:\tShould move the balance and reduce the allowance.", success)

		if err := tkn.TransferFrom(fan, engine, engine, 200); !errors.Is(err, token.ErrInsufficientAllowance) {
			t.Fatalf("\t%s\tTest 0:\tShould reject a pull past the allowance: %v", failed, err)
		}
		t.Logf("\t%s\tTest 0:\tShould reject a pull past the allowance.", success)

		tkn.Approve(fan, engine, 5000)
		if err := tkn.TransferFrom(fan, engine, engine, 1000); !errors.Is(err, token.ErrInsufficientFunds) {
			t.Fatalf("\t%s\tTest 0:\tShould reject a pull past the balance: %v", failed, err)
		}
		t.Logf("\t%s\tTest 0:\tShould reject a pull past the balance.", success)
	}
}

func Test_Transfer(t *testing.T) {
	t.Log("Given the need to pay out withdrawn earnings.")
	{
		tkn, err := token.New(map[string]uint64{string(engine): 500})
		if err != nil {
			t.Fatalf("\t%s\tTest 0:\tShould be able to construct the token ledger: %v", failed, err)
		}

		if err := tkn.Transfer(engine, artist, 500); err != nil {
			t.Fatalf("\t%s\tTest 0:\tShould be able to transfer the full balance: %v", failed, err)
		}
		t.Logf("\t%s\tTest 0:\tShould be able to transfer the full balance.", success)

		if err := tkn.Transfer(engine, artist, 1); !errors.Is(err, token.ErrInsufficientFunds) {
			t.Fatalf("\t%s\tTest 0:\tShould reject a transfer from an empty account: %v", failed, err)
		}
		t.Logf("\t%s\tTest 0:\tShould reject a transfer from an empty account.", success)

		if got := tkn.BalanceOf(artist); got != 500 {
			t.Fatalf("\t%s\tTest 0:\tShould credit the recipient exactly: got %d, exp %d.", failed, got, 500)
		}
		t.Logf("\t%s\tTest 0:\tShould credit the recipient exactly.", success)
	}
}

func Test_Nonces(t *testing.T) {
	t.Log("Given the need to protect signed calls from replay.")
	{
		tkn, err := token.New(nil)
		if err != nil {
			t.Fatalf("\t%s\tTest 0:\tShould be able to construct the token ledger: %v", failed, err)
		}

		if err := tkn.ValidateNonce(fan, 1); err != nil {
			t.Fatalf("\t%s\tTest 0:\tShould accept the first nonce: %v", failed, err)
		}
		t.Logf("\t%s\tTest 0:\tShould accept the first nonce.", success)

		tkn.BumpNonce(fan)

		if err := tkn.ValidateNonce(fan, 1); !errors.Is(err, token.ErrInvalidNonce) {
			t.Fatalf("\t%s\tTest 0:\tShould reject a replayed nonce: %v", failed, err)
		}
		t.Logf("\t%s\tTest 0:\tShould reject a replayed nonce.", success)

		if err := tkn.ValidateNonce(fan, 3); !errors.Is(err, token.ErrInvalidNonce) {
			t.Fatalf("\t%s\tTest 0:\tShould reject a nonce gap: %v", failed, err)
		}
		t.Logf("\t%s\tTest 0:\tShould reject a nonce gap.", success)

		if err := tkn.ValidateNonce(fan, 2); err != nil {
			t.Fatalf("\t%s\tTest 0:\tShould accept the next nonce: %v", failed, err)
		}
		t.Logf("\t%s\tTest 0:\tShould accept the next nonce.", success)
	}
}
