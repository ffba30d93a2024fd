package call

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"

	"github.com/riffworks/riff/foundation/riff/account"
	"github.com/riffworks/riff/foundation/riff/signature"
)

// ProfileCall registers or updates the caller's artist profile.
type ProfileCall struct {
	Nonce uint64      `json:"nonce" validate:"required"`
	Kind  ProfileKind `json:"kind" validate:"required,oneof=register update"`
	Name  string      `json:"name" validate:"required,max=64"`
	Bio   string      `json:"bio" validate:"max=512"`
}

// Sign uses the specified private key to sign the profile call.
func (c ProfileCall) Sign(privateKey *ecdsa.PrivateKey) (SignedProfileCall, error) {
	v, r, s, err := signature.Sign(c, privateKey)
	if err != nil {
		return SignedProfileCall{}, err
	}

	signed := SignedProfileCall{
		ProfileCall: c,
		V:           v,
		R:           r,
		S:           s,
	}

	return signed, nil
}

// =============================================================================

// SignedProfileCall is a signed version of the profile call. This is how
// clients like a wallet provide profile operations to the ledger.
type SignedProfileCall struct {
	ProfileCall
	V *big.Int `json:"v"` // Recovery identifier, either 31 or 32 with riffID.
	R *big.Int `json:"r"` // First coordinate of the ECDSA signature.
	S *big.Int `json:"s"` // Second coordinate of the ECDSA signature.
}

// Validate verifies the call has a proper signature that conforms to our
// standards and is associated with the data claimed to be signed.
func (c SignedProfileCall) Validate() error {
	if c.Kind != ProfileRegister && c.Kind != ProfileUpdate {
		return fmt.Errorf("unrecognized profile call kind %q", c.Kind)
	}

	if c.Name == "" {
		return errors.New("profile name is required")
	}

	if err := signature.VerifySignature(c.V, c.R, c.S); err != nil {
		return err
	}

	return nil
}

// FromAccount extracts the account id that signed the call.
func (c SignedProfileCall) FromAccount() (account.AccountID, error) {
	address, err := signature.FromAddress(c.ProfileCall, c.V, c.R, c.S)
	return account.AccountID(address), err
}

// SignatureString returns the signature as a string.
func (c SignedProfileCall) SignatureString() string {
	return signature.SignatureString(c.V, c.R, c.S)
}

// String implements the fmt.Stringer interface for logging.
func (c SignedProfileCall) String() string {
	from, err := c.FromAccount()
	if err != nil {
		from = "unknown"
	}

	return fmt.Sprintf("%s:%d", from, c.Nonce)
}
