package call

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"

	"github.com/riffworks/riff/foundation/riff/account"
	"github.com/riffworks/riff/foundation/riff/signature"
)

// WithdrawCall pays out an accrued balance. The earnings kind pays the
// caller's balance for a single track; the platform kind sweeps the
// platform fee pool and is only honored for the genesis owner.
type WithdrawCall struct {
	Nonce   uint64       `json:"nonce" validate:"required"`
	Kind    WithdrawKind `json:"kind" validate:"required,oneof=earnings platform"`
	TrackID uint64       `json:"track_id" validate:"required_if=Kind earnings"`
}

// Sign uses the specified private key to sign the withdraw call.
func (c WithdrawCall) Sign(privateKey *ecdsa.PrivateKey) (SignedWithdrawCall, error) {
	v, r, s, err := signature.Sign(c, privateKey)
	if err != nil {
		return SignedWithdrawCall{}, err
	}

	signed := SignedWithdrawCall{
		WithdrawCall: c,
		V:            v,
		R:            r,
		S:            s,
	}

	return signed, nil
}

// =============================================================================

// SignedWithdrawCall is a signed version of the withdraw call.
type SignedWithdrawCall struct {
	WithdrawCall
	V *big.Int `json:"v"` // Recovery identifier, either 31 or 32 with riffID.
	R *big.Int `json:"r"` // First coordinate of the ECDSA signature.
	S *big.Int `json:"s"` // Second coordinate of the ECDSA signature.
}

// Validate verifies the call has a proper signature that conforms to our
// standards and is associated with the data claimed to be signed.
func (c SignedWithdrawCall) Validate() error {
	switch c.Kind {
	case WithdrawEarnings:
		if c.TrackID == 0 {
			return errors.New("track id is required")
		}

	case WithdrawPlatform:

	default:
		return fmt.Errorf("unrecognized withdraw call kind %q", c.Kind)
	}

	if err := signature.VerifySignature(c.V, c.R, c.S); err != nil {
		return err
	}

	return nil
}

// FromAccount extracts the account id that signed the call.
func (c SignedWithdrawCall) FromAccount() (account.AccountID, error) {
	address, err := signature.FromAddress(c.WithdrawCall, c.V, c.R, c.S)
	return account.AccountID(address), err
}

// SignatureString returns the signature as a string.
func (c SignedWithdrawCall) SignatureString() string {
	return signature.SignatureString(c.V, c.R, c.S)
}

// String implements the fmt.Stringer interface for logging.
func (c SignedWithdrawCall) String() string {
	from, err := c.FromAccount()
	if err != nil {
		from = "unknown"
	}

	return fmt.Sprintf("%s:%d", from, c.Nonce)
}
