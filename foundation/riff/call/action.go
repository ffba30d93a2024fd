package call

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"

	"github.com/riffworks/riff/foundation/riff/account"
	"github.com/riffworks/riff/foundation/riff/signature"
)

// ActionCall records a fee-bearing fan action against a track. The
// message field is only meaningful for comment actions and must be
// empty for every other kind.
type ActionCall struct {
	Nonce   uint64     `json:"nonce" validate:"required"`
	TrackID uint64     `json:"track_id" validate:"required"`
	Kind    ActionKind `json:"kind" validate:"required,oneof=play like comment banger"`
	Message string     `json:"message" validate:"max=1024"`
}

// Sign uses the specified private key to sign the action call.
func (c ActionCall) Sign(privateKey *ecdsa.PrivateKey) (SignedActionCall, error) {
	v, r, s, err := signature.Sign(c, privateKey)
	if err != nil {
		return SignedActionCall{}, err
	}

	signed := SignedActionCall{
		ActionCall: c,
		V:          v,
		R:          r,
		S:          s,
	}

	return signed, nil
}

// =============================================================================

// SignedActionCall is a signed version of the action call.
type SignedActionCall struct {
	ActionCall
	V *big.Int `json:"v"` // Recovery identifier, either 31 or 32 with riffID.
	R *big.Int `json:"r"` // First coordinate of the ECDSA signature.
	S *big.Int `json:"s"` // Second coordinate of the ECDSA signature.
}

// Validate verifies the call has a proper signature that conforms to our
// standards and is associated with the data claimed to be signed. Kind
// and message payload rules are enforced by the settlement engine since
// the error taxonomy belongs to the ledger.
func (c SignedActionCall) Validate() error {
	if c.TrackID == 0 {
		return errors.New("track id is required")
	}

	if err := signature.VerifySignature(c.V, c.R, c.S); err != nil {
		return err
	}

	return nil
}

// FromAccount extracts the account id that signed the call.
func (c SignedActionCall) FromAccount() (account.AccountID, error) {
	address, err := signature.FromAddress(c.ActionCall, c.V, c.R, c.S)
	return account.AccountID(address), err
}

// SignatureString returns the signature as a string.
func (c SignedActionCall) SignatureString() string {
	return signature.SignatureString(c.V, c.R, c.S)
}

// String implements the fmt.Stringer interface for logging.
func (c SignedActionCall) String() string {
	from, err := c.FromAccount()
	if err != nil {
		from = "unknown"
	}

	return fmt.Sprintf("%s:%d", from, c.Nonce)
}
