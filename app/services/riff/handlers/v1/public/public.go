// Package public maintains the group of handlers for public access.
package public

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/riffworks/riff/business/sys/validate"
	v1 "github.com/riffworks/riff/business/web/v1"
	"github.com/riffworks/riff/foundation/events"
	"github.com/riffworks/riff/foundation/nameservice"
	"github.com/riffworks/riff/foundation/riff/account"
	"github.com/riffworks/riff/foundation/riff/call"
	"github.com/riffworks/riff/foundation/riff/ledger"
	"github.com/riffworks/riff/foundation/riff/state"
	"github.com/riffworks/riff/foundation/riff/token"
	"github.com/riffworks/riff/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of revenue ledger endpoints.
type Handlers struct {
	Log   *zap.SugaredLogger
	State *state.State
	NS    *nameservice.NameService
	WS    websocket.Upgrader
	Evts  *events.Events
}

// Events handles a web socket to provide events to a client.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	h.WS.CheckOrigin = func(r *http.Request) bool { return true }

	c, err := h.WS.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	ch := h.Evts.Acquire(v.TraceID)
	defer h.Evts.Release(v.TraceID)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case event, wd := <-ch:
			if !wd {
				return nil
			}

			data, err := json.Marshal(event)
			if err != nil {
				return err
			}

			if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
				return err
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}
		}
	}
}

// SubmitProfile accepts a signed profile call for processing.
func (h Handlers) SubmitProfile(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var signed call.SignedProfileCall
	if err := web.Decode(r, &signed); err != nil {
		return fmt.Errorf("unable to decode payload: %w", err)
	}

	if err := validate.Check(signed); err != nil {
		return err
	}

	h.Log.Infow("submit profile", "traceid", v.TraceID, "from:nonce", signed, "kind", signed.Kind)
	if err := h.State.SubmitProfileCall(signed); err != nil {
		return errStatus(err)
	}

	resp := struct {
		Status string `json:"status"`
	}{
		Status: "profile call accepted",
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// SubmitTrack accepts a signed track call for processing.
func (h Handlers) SubmitTrack(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var signed call.SignedTrackCall
	if err := web.Decode(r, &signed); err != nil {
		return fmt.Errorf("unable to decode payload: %w", err)
	}

	if err := validate.Check(signed); err != nil {
		return err
	}

	h.Log.Infow("submit track", "traceid", v.TraceID, "from:nonce", signed, "kind", signed.Kind)
	trackID, err := h.State.SubmitTrackCall(signed)
	if err != nil {
		return errStatus(err)
	}

	resp := struct {
		Status  string `json:"status"`
		TrackID uint64 `json:"track_id"`
	}{
		Status:  "track call accepted",
		TrackID: trackID,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// SubmitContributor accepts a signed contributor call for processing.
func (h Handlers) SubmitContributor(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var signed call.SignedContributorCall
	if err := web.Decode(r, &signed); err != nil {
		return fmt.Errorf("unable to decode payload: %w", err)
	}

	if err := validate.Check(signed); err != nil {
		return err
	}

	h.Log.Infow("submit contributor", "traceid", v.TraceID, "from:nonce", signed, "track", signed.TrackID, "bps", signed.PercentageBps)
	if err := h.State.SubmitContributorCall(signed); err != nil {
		return errStatus(err)
	}

	resp := struct {
		Status string `json:"status"`
	}{
		Status: "contributor call accepted",
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// SubmitApprove accepts a signed approve call for processing.
func (h Handlers) SubmitApprove(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var signed call.SignedApproveCall
	if err := web.Decode(r, &signed); err != nil {
		return fmt.Errorf("unable to decode payload: %w", err)
	}

	if err := validate.Check(signed); err != nil {
		return err
	}

	h.Log.Infow("submit approve", "traceid", v.TraceID, "from:nonce", signed, "spender", signed.Spender, "amount", signed.Amount)
	if err := h.State.SubmitApproveCall(signed); err != nil {
		return errStatus(err)
	}

	resp := struct {
		Status string `json:"status"`
	}{
		Status: "approve call accepted",
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// SubmitAction accepts a signed fan action call and settles it.
func (h Handlers) SubmitAction(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var signed call.SignedActionCall
	if err := web.Decode(r, &signed); err != nil {
		return fmt.Errorf("unable to decode payload: %w", err)
	}

	if err := validate.Check(signed); err != nil {
		return err
	}

	h.Log.Infow("submit action", "traceid", v.TraceID, "from:nonce", signed, "track", signed.TrackID, "kind", signed.Kind)
	settlement, err := h.State.SubmitActionCall(signed)
	if err != nil {
		return errStatus(err)
	}

	return web.Respond(ctx, w, toSettlement(settlement, h.NS), http.StatusOK)
}

// SubmitWithdraw accepts a signed withdraw call and pays out the balance.
func (h Handlers) SubmitWithdraw(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var signed call.SignedWithdrawCall
	if err := web.Decode(r, &signed); err != nil {
		return fmt.Errorf("unable to decode payload: %w", err)
	}

	if err := validate.Check(signed); err != nil {
		return err
	}

	h.Log.Infow("submit withdraw", "traceid", v.TraceID, "from:nonce", signed, "kind", signed.Kind)
	amount, err := h.State.SubmitWithdrawCall(signed)
	if err != nil {
		return errStatus(err)
	}

	resp := struct {
		Status string `json:"status"`
		Amount uint64 `json:"amount"`
	}{
		Status: "withdrawal paid",
		Amount: amount,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Genesis returns the genesis information.
func (h Handlers) Genesis(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	gen := h.State.RetrieveGenesis()
	return web.Respond(ctx, w, gen, http.StatusOK)
}

// Accounts returns the current token balance and nonce for all accounts.
func (h Handlers) Accounts(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	acct := web.Param(r, "account")

	var accounts map[account.AccountID]token.Info
	switch acct {
	case "":
		accounts = h.State.RetrieveAccounts()

	default:
		accountID, err := account.ToAccountID(acct)
		if err != nil {
			return v1.NewRequestError(err, http.StatusBadRequest)
		}
		accounts = map[account.AccountID]token.Info{
			accountID: h.State.QueryAccount(accountID),
		}
	}

	acts := make([]actInfo, 0, len(accounts))
	for accountID, info := range accounts {
		act := actInfo{
			Account: accountID,
			Name:    h.NS.Lookup(accountID),
			Balance: info.Balance,
			Nonce:   info.Nonce,
		}
		acts = append(acts, act)
	}

	ai := accountsInfo{
		LatestSeq: h.State.RetrieveLatestSeq(),
		Accounts:  acts,
	}

	return web.Respond(ctx, w, ai, http.StatusOK)
}

// Allowance returns the amount a spender may pull from an owner.
func (h Handlers) Allowance(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	owner, err := account.ToAccountID(web.Param(r, "owner"))
	if err != nil {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}

	spender, err := account.ToAccountID(web.Param(r, "spender"))
	if err != nil {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}

	resp := struct {
		Owner   account.AccountID `json:"owner"`
		Spender account.AccountID `json:"spender"`
		Amount  uint64            `json:"amount"`
	}{
		Owner:   owner,
		Spender: spender,
		Amount:  h.State.QueryAllowance(owner, spender),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Profile returns the profile registered for the specified account.
func (h Handlers) Profile(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	accountID, err := account.ToAccountID(web.Param(r, "account"))
	if err != nil {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}

	prof := h.State.QueryProfile(accountID)
	if prof.Name == "" {
		return v1.NewRequestError(ledger.ErrNotRegistered, http.StatusNotFound)
	}

	return web.Respond(ctx, w, toProfile(accountID, prof, h.NS), http.StatusOK)
}

// Tracks returns the full track catalog.
func (h Handlers) Tracks(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	tracks := h.State.RetrieveTracks()
	if len(tracks) == 0 {
		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}

	resp := make([]trackInfo, len(tracks))
	for i, trk := range tracks {
		resp[i] = toTrack(trk, h.NS)
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Track returns the catalog entry for a single track.
func (h Handlers) Track(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	trackID, err := trackParam(r)
	if err != nil {
		return err
	}

	trk, err := h.State.QueryTrack(trackID)
	if err != nil {
		return errStatus(err)
	}

	return web.Respond(ctx, w, toTrack(trk, h.NS), http.StatusOK)
}

// Contributors returns the revenue share table for a track.
func (h Handlers) Contributors(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	trackID, err := trackParam(r)
	if err != nil {
		return err
	}

	if _, err := h.State.QueryTrack(trackID); err != nil {
		return errStatus(err)
	}

	contribs := h.State.QueryContributors(trackID)

	resp := shareTable{
		TrackID:       trackID,
		OwnerShareBps: h.State.QueryOwnerShareBps(trackID),
		Contributors:  make([]contributorInfo, len(contribs)),
	}
	for i, c := range contribs {
		resp.Contributors[i] = contributorInfo{
			Account:       c.Account,
			Name:          h.NS.Lookup(c.Account),
			PercentageBps: c.PercentageBps,
		}
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Comments returns the comments recorded against a track.
func (h Handlers) Comments(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	trackID, err := trackParam(r)
	if err != nil {
		return err
	}

	if _, err := h.State.QueryTrack(trackID); err != nil {
		return errStatus(err)
	}

	comments := h.State.QueryComments(trackID)

	resp := make([]commentInfo, len(comments))
	for i, c := range comments {
		resp[i] = commentInfo{
			Author:    c.Author,
			Name:      h.NS.Lookup(c.Author),
			Message:   c.Message,
			TimeStamp: c.TimeStamp,
		}
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// TrackEarnings returns the lifetime settled earnings for a track.
func (h Handlers) TrackEarnings(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	trackID, err := trackParam(r)
	if err != nil {
		return err
	}

	if _, err := h.State.QueryTrack(trackID); err != nil {
		return errStatus(err)
	}

	resp := struct {
		TrackID  uint64 `json:"track_id"`
		Lifetime uint64 `json:"lifetime"`
	}{
		TrackID:  trackID,
		Lifetime: h.State.QueryTrackEarnings(trackID),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// EarningsBalance returns the withdrawable earnings balance for one
// beneficiary on one track.
func (h Handlers) EarningsBalance(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	trackID, err := trackParam(r)
	if err != nil {
		return err
	}

	accountID, err := account.ToAccountID(web.Param(r, "account"))
	if err != nil {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}

	if _, err := h.State.QueryTrack(trackID); err != nil {
		return errStatus(err)
	}

	resp := struct {
		TrackID uint64            `json:"track_id"`
		Account account.AccountID `json:"account"`
		Name    string            `json:"name"`
		Balance uint64            `json:"balance"`
	}{
		TrackID: trackID,
		Account: accountID,
		Name:    h.NS.Lookup(accountID),
		Balance: h.State.QueryEarningsBalance(trackID, accountID),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// =============================================================================

// trackParam parses the track id route parameter.
func trackParam(r *http.Request) (uint64, error) {
	trackID, err := strconv.ParseUint(web.Param(r, "id"), 10, 64)
	if err != nil {
		return 0, v1.NewRequestError(errors.New("invalid track id"), http.StatusBadRequest)
	}
	return trackID, nil
}

// errStatus maps the business errors to the proper HTTP status code.
func errStatus(err error) error {
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		return v1.NewRequestError(err, http.StatusNotFound)

	case errors.Is(err, ledger.ErrUnauthorized):
		return v1.NewRequestError(err, http.StatusForbidden)

	case errors.Is(err, token.ErrInsufficientFunds),
		errors.Is(err, token.ErrInsufficientAllowance):
		return v1.NewRequestError(err, http.StatusPaymentRequired)

	default:
		return v1.NewRequestError(err, http.StatusBadRequest)
	}
}
