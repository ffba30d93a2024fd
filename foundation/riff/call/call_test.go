package call_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/riffworks/riff/foundation/riff/call"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

const pkHexKey = "fae85851bdf5c9f49923722ce38f3c1defcfd3619ef5453230a58ad805499959"
const from = "0xdd6B972ffcc631a62CAE1BB9d80b7ff429c8ebA4"

// =============================================================================

func Test_SignedCalls(t *testing.T) {
	pk, err := crypto.HexToECDSA(pkHexKey)
	if err != nil {
		t.Fatalf("Should be able to load the private key: %v", err)
	}

	t.Log("Given the need to sign calls and recover the caller.")
	{
		t.Logf("\tTest 0:\tWhen handling a profile call.")
		{
			c := call.ProfileCall{
				Nonce: 1,
				Kind:  call.ProfileRegister,
				Name:  "Frequency",
				Bio:   "late night loops",
			}

			signed, err := c.Sign(pk)
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to sign the call: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to sign the call.", success)

			if err := signed.Validate(); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to validate the signed call: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to validate the signed call.", success)

			caller, err := signed.FromAccount()
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to recover the caller: %v", failed, err)
			}
			if string(caller) != from {
				t.Logf("\t\tTest 0:\tgot: %s", caller)
				t.Logf("\t\tTest 0:\texp: %s", from)
				t.Fatalf("\t%s\tTest 0:\tShould recover the signing account.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould recover the signing account.", success)
		}

		t.Logf("\tTest 1:\tWhen handling an action call.")
		{
			c := call.ActionCall{
				Nonce:   2,
				TrackID: 1,
				Kind:    call.ActionComment,
				Message: "total banger",
			}

			signed, err := c.Sign(pk)
			if err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to sign the call: %v", failed, err)
			}
			t.Logf("\t%s\tTest 1:\tShould be able to sign the call.", success)

			caller, err := signed.FromAccount()
			if err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to recover the caller: %v", failed, err)
			}
			if string(caller) != from {
				t.Fatalf("\t%s\tTest 1:\tShould recover the signing account.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould recover the signing account.", success)

			// A mutated message must not recover the signing account.
			signed.Message = "mutated"
			caller, err = signed.FromAccount()
			if err == nil && string(caller) == from {
				t.Fatalf("\t%s\tTest 1:\tShould not recover the signer for mutated data.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould not recover the signer for mutated data.", success)
		}

		t.Logf("\tTest 2:\tWhen handling a track delete call without a track id.")
		{
			c := call.TrackCall{
				Nonce: 3,
				Kind:  call.TrackDelete,
			}

			signed, err := c.Sign(pk)
			if err != nil {
				t.Fatalf("\t%s\tTest 2:\tShould be able to sign the call: %v", failed, err)
			}

			if err := signed.Validate(); err == nil {
				t.Fatalf("\t%s\tTest 2:\tShould reject a delete call without a track id.", failed)
			}
			t.Logf("\t%s\tTest 2:\tShould reject a delete call without a track id.", success)
		}
	}
}

func Test_ParseActionKind(t *testing.T) {
	type table struct {
		name  string
		value string
		valid bool
	}

	tt := []table{
		{name: "play", value: "play", valid: true},
		{name: "like", value: "like", valid: true},
		{name: "comment", value: "comment", valid: true},
		{name: "banger", value: "banger", valid: true},
		{name: "unknown", value: "remix", valid: false},
		{name: "empty", value: "", valid: false},
	}

	t.Log("Given the need to validate action kinds form a closed set.")
	{
		for testID, tst := range tt {
			f := func(t *testing.T) {
				kind, err := call.ParseActionKind(tst.value)

				switch {
				case tst.valid && err != nil:
					t.Fatalf("\t%s\tTest %d:\tShould parse kind %q: %v", failed, testID, tst.value, err)

				case !tst.valid && err == nil:
					t.Fatalf("\t%s\tTest %d:\tShould reject kind %q.", failed, testID, tst.value)

				case tst.valid && string(kind) != tst.value:
					t.Fatalf("\t%s\tTest %d:\tShould round trip kind %q.", failed, testID, tst.value)
				}
				t.Logf("\t%s\tTest %d:\tShould handle kind %q.", success, testID, tst.value)
			}

			t.Run(tst.name, f)
		}
	}
}
