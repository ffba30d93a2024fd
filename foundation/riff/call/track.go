package call

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"

	"github.com/riffworks/riff/foundation/riff/account"
	"github.com/riffworks/riff/foundation/riff/signature"
)

// TrackCall uploads a new track or soft deletes an existing one.
type TrackCall struct {
	Nonce       uint64    `json:"nonce" validate:"required"`
	Kind        TrackKind `json:"kind" validate:"required,oneof=upload delete"`
	TrackID     uint64    `json:"track_id" validate:"required_if=Kind delete"`
	CID         string    `json:"cid" validate:"required_if=Kind upload,max=128"`
	Title       string    `json:"title" validate:"required_if=Kind upload,max=128"`
	Description string    `json:"description" validate:"max=1024"`
}

// Sign uses the specified private key to sign the track call.
func (c TrackCall) Sign(privateKey *ecdsa.PrivateKey) (SignedTrackCall, error) {
	v, r, s, err := signature.Sign(c, privateKey)
	if err != nil {
		return SignedTrackCall{}, err
	}

	signed := SignedTrackCall{
		TrackCall: c,
		V:         v,
		R:         r,
		S:         s,
	}

	return signed, nil
}

// =============================================================================

// SignedTrackCall is a signed version of the track call.
type SignedTrackCall struct {
	TrackCall
	V *big.Int `json:"v"` // Recovery identifier, either 31 or 32 with riffID.
	R *big.Int `json:"r"` // First coordinate of the ECDSA signature.
	S *big.Int `json:"s"` // Second coordinate of the ECDSA signature.
}

// Validate verifies the call has a proper signature that conforms to our
// standards and is associated with the data claimed to be signed.
func (c SignedTrackCall) Validate() error {
	switch c.Kind {
	case TrackUpload:
		if c.CID == "" {
			return errors.New("track content id is required")
		}
		if c.Title == "" {
			return errors.New("track title is required")
		}

	case TrackDelete:
		if c.TrackID == 0 {
			return errors.New("track id is required")
		}

	default:
		return fmt.Errorf("unrecognized track call kind %q", c.Kind)
	}

	if err := signature.VerifySignature(c.V, c.R, c.S); err != nil {
		return err
	}

	return nil
}

// FromAccount extracts the account id that signed the call.
func (c SignedTrackCall) FromAccount() (account.AccountID, error) {
	address, err := signature.FromAddress(c.TrackCall, c.V, c.R, c.S)
	return account.AccountID(address), err
}

// SignatureString returns the signature as a string.
func (c SignedTrackCall) SignatureString() string {
	return signature.SignatureString(c.V, c.R, c.S)
}

// String implements the fmt.Stringer interface for logging.
func (c SignedTrackCall) String() string {
	from, err := c.FromAccount()
	if err != nil {
		from = "unknown"
	}

	return fmt.Sprintf("%s:%d", from, c.Nonce)
}
