package call

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"

	"github.com/riffworks/riff/foundation/riff/account"
	"github.com/riffworks/riff/foundation/riff/signature"
)

// ContributorCall adds or reconfigures a revenue-share contributor on a
// track owned by the caller.
type ContributorCall struct {
	Nonce         uint64            `json:"nonce" validate:"required"`
	Kind          ContributorKind   `json:"kind" validate:"required,oneof=add configure"`
	TrackID       uint64            `json:"track_id" validate:"required"`
	Contributor   account.AccountID `json:"contributor" validate:"required"`
	PercentageBps uint64            `json:"percentage_bps" validate:"required,lte=10000"`
}

// Sign uses the specified private key to sign the contributor call.
func (c ContributorCall) Sign(privateKey *ecdsa.PrivateKey) (SignedContributorCall, error) {
	v, r, s, err := signature.Sign(c, privateKey)
	if err != nil {
		return SignedContributorCall{}, err
	}

	signed := SignedContributorCall{
		ContributorCall: c,
		V:               v,
		R:               r,
		S:               s,
	}

	return signed, nil
}

// =============================================================================

// SignedContributorCall is a signed version of the contributor call.
type SignedContributorCall struct {
	ContributorCall
	V *big.Int `json:"v"` // Recovery identifier, either 31 or 32 with riffID.
	R *big.Int `json:"r"` // First coordinate of the ECDSA signature.
	S *big.Int `json:"s"` // Second coordinate of the ECDSA signature.
}

// Validate verifies the call has a proper signature that conforms to our
// standards and is associated with the data claimed to be signed.
func (c SignedContributorCall) Validate() error {
	if c.Kind != ContributorAdd && c.Kind != ContributorConfigure {
		return fmt.Errorf("unrecognized contributor call kind %q", c.Kind)
	}

	if !c.Contributor.IsAccountID() {
		return errors.New("invalid account for contributor")
	}

	if c.TrackID == 0 {
		return errors.New("track id is required")
	}

	if err := signature.VerifySignature(c.V, c.R, c.S); err != nil {
		return err
	}

	return nil
}

// FromAccount extracts the account id that signed the call.
func (c SignedContributorCall) FromAccount() (account.AccountID, error) {
	address, err := signature.FromAddress(c.ContributorCall, c.V, c.R, c.S)
	return account.AccountID(address), err
}

// SignatureString returns the signature as a string.
func (c SignedContributorCall) SignatureString() string {
	return signature.SignatureString(c.V, c.R, c.S)
}

// String implements the fmt.Stringer interface for logging.
func (c SignedContributorCall) String() string {
	from, err := c.FromAccount()
	if err != nil {
		from = "unknown"
	}

	return fmt.Sprintf("%s:%d", from, c.Nonce)
}
