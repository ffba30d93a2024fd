// Package genesis maintains access to the genesis file.
package genesis

import (
	"encoding/json"
	"os"
	"time"
)

// Fees represents the fee charged for each fan action, denominated in
// the smallest unit of the platform token.
type Fees struct {
	Play    uint64 `json:"play"`
	Like    uint64 `json:"like"`
	Comment uint64 `json:"comment"`
	Banger  uint64 `json:"banger"`
}

// Genesis represents the genesis file.
type Genesis struct {
	Date           time.Time         `json:"date"`
	ChainID        uint16            `json:"chain_id"`         // Unique id for this running instance.
	OwnerAccount   string            `json:"owner_account"`    // Account allowed to sweep platform fees.
	EngineAccount  string            `json:"engine_account"`   // Escrow account holding fees until withdrawal.
	PlatformFeeBps uint64            `json:"platform_fee_bps"` // Platform cut taken off the top of each settlement.
	Fees           Fees              `json:"fees"`
	Balances       map[string]uint64 `json:"balances"`
}

// =============================================================================

// Load opens and consumes the genesis file.
func Load(path string) (Genesis, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Genesis{}, err
	}

	var genesis Genesis
	err = json.Unmarshal(content, &genesis)
	if err != nil {
		return Genesis{}, err
	}

	return genesis, nil
}

// ActionFee returns the fee amount charged for the specified action
// kind. The second return reports whether the kind is recognized.
func (g Genesis) ActionFee(kind string) (uint64, bool) {
	switch kind {
	case "play":
		return g.Fees.Play, true
	case "like":
		return g.Fees.Like, true
	case "comment":
		return g.Fees.Comment, true
	case "banger":
		return g.Fees.Banger, true
	}

	return 0, false
}
