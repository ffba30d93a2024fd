// Package private maintains the group of handlers for operator access.
package private

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	v1 "github.com/riffworks/riff/business/web/v1"
	"github.com/riffworks/riff/foundation/nameservice"
	"github.com/riffworks/riff/foundation/riff/state"
	"github.com/riffworks/riff/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of operator endpoints.
type Handlers struct {
	Log   *zap.SugaredLogger
	State *state.State
	NS    *nameservice.NameService
}

// Status returns the current status of the node.
func (h Handlers) Status(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	gen := h.State.RetrieveGenesis()

	status := struct {
		ChainID      uint16 `json:"chain_id"`
		LatestSeq    uint64 `json:"latest_seq"`
		Accounts     int    `json:"accounts"`
		Tracks       int    `json:"tracks"`
		PlatformPool uint64 `json:"platform_pool"`
	}{
		ChainID:      gen.ChainID,
		LatestSeq:    h.State.RetrieveLatestSeq(),
		Accounts:     len(h.State.RetrieveAccounts()),
		Tracks:       len(h.State.RetrieveTracks()),
		PlatformPool: h.State.QueryPlatformPool(),
	}

	return web.Respond(ctx, w, status, http.StatusOK)
}

// Fees returns the action fee schedule from genesis.
func (h Handlers) Fees(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	gen := h.State.RetrieveGenesis()

	resp := struct {
		PlatformFeeBps uint64 `json:"platform_fee_bps"`
		Play           uint64 `json:"play"`
		Like           uint64 `json:"like"`
		Comment        uint64 `json:"comment"`
		Banger         uint64 `json:"banger"`
	}{
		PlatformFeeBps: gen.PlatformFeeBps,
		Play:           gen.Fees.Play,
		Like:           gen.Fees.Like,
		Comment:        gen.Fees.Comment,
		Banger:         gen.Fees.Banger,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// PlatformPool returns the accrued platform fee pool.
func (h Handlers) PlatformPool(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	resp := struct {
		Pool uint64 `json:"pool"`
	}{
		Pool: h.State.QueryPlatformPool(),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// JournalByRange returns the journal records for the specified to/from
// sequence values.
func (h Handlers) JournalByRange(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	fromStr := web.Param(r, "from")
	if fromStr == "latest" || fromStr == "" {
		fromStr = strconv.FormatUint(h.State.RetrieveLatestSeq(), 10)
	}

	toStr := web.Param(r, "to")
	if toStr == "latest" || toStr == "" {
		toStr = strconv.FormatUint(h.State.RetrieveLatestSeq(), 10)
	}

	from, err := strconv.ParseUint(fromStr, 10, 64)
	if err != nil {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}
	to, err := strconv.ParseUint(toStr, 10, 64)
	if err != nil {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}

	if from > to {
		return v1.NewRequestError(errors.New("from greater than to"), http.StatusBadRequest)
	}

	records, err := h.State.QueryJournal(from, to)
	if err != nil {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}
	if len(records) == 0 {
		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}

	return web.Respond(ctx, w, records, http.StatusOK)
}
