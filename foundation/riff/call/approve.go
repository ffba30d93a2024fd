package call

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"

	"github.com/riffworks/riff/foundation/riff/account"
	"github.com/riffworks/riff/foundation/riff/signature"
)

// ApproveCall grants a spender the right to pull tokens from the
// caller's balance, up to the specified amount. Fans approve the
// settlement engine before recording fee-bearing actions.
type ApproveCall struct {
	Nonce   uint64            `json:"nonce" validate:"required"`
	Spender account.AccountID `json:"spender" validate:"required"`
	Amount  uint64            `json:"amount"`
}

// Sign uses the specified private key to sign the approve call.
func (c ApproveCall) Sign(privateKey *ecdsa.PrivateKey) (SignedApproveCall, error) {
	v, r, s, err := signature.Sign(c, privateKey)
	if err != nil {
		return SignedApproveCall{}, err
	}

	signed := SignedApproveCall{
		ApproveCall: c,
		V:           v,
		R:           r,
		S:           s,
	}

	return signed, nil
}

// =============================================================================

// SignedApproveCall is a signed version of the approve call.
type SignedApproveCall struct {
	ApproveCall
	V *big.Int `json:"v"` // Recovery identifier, either 31 or 32 with riffID.
	R *big.Int `json:"r"` // First coordinate of the ECDSA signature.
	S *big.Int `json:"s"` // Second coordinate of the ECDSA signature.
}

// Validate verifies the call has a proper signature that conforms to our
// standards and is associated with the data claimed to be signed.
func (c SignedApproveCall) Validate() error {
	if !c.Spender.IsAccountID() {
		return errors.New("invalid account for spender")
	}

	if err := signature.VerifySignature(c.V, c.R, c.S); err != nil {
		return err
	}

	return nil
}

// FromAccount extracts the account id that signed the call.
func (c SignedApproveCall) FromAccount() (account.AccountID, error) {
	address, err := signature.FromAddress(c.ApproveCall, c.V, c.R, c.S)
	return account.AccountID(address), err
}

// SignatureString returns the signature as a string.
func (c SignedApproveCall) SignatureString() string {
	return signature.SignatureString(c.V, c.R, c.S)
}

// String implements the fmt.Stringer interface for logging.
func (c SignedApproveCall) String() string {
	from, err := c.FromAccount()
	if err != nil {
		from = "unknown"
	}

	return fmt.Sprintf("%s:%d", from, c.Nonce)
}
