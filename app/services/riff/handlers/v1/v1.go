// Package v1 contains the full set of handler functions and routes
// supported by the v1 web api.
package v1

import (
	"net/http"

	"github.com/riffworks/riff/app/services/riff/handlers/v1/private"
	"github.com/riffworks/riff/app/services/riff/handlers/v1/public"
	"github.com/riffworks/riff/foundation/events"
	"github.com/riffworks/riff/foundation/nameservice"
	"github.com/riffworks/riff/foundation/riff/state"
	"github.com/riffworks/riff/foundation/web"
	"go.uber.org/zap"
)

const version = "v1"

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log   *zap.SugaredLogger
	State *state.State
	NS    *nameservice.NameService
	Evts  *events.Events
}

// PublicRoutes binds all the version 1 public routes.
func PublicRoutes(app *web.App, cfg Config) {
	pbl := public.Handlers{
		Log:   cfg.Log,
		State: cfg.State,
		NS:    cfg.NS,
		Evts:  cfg.Evts,
	}

	app.Handle(http.MethodGet, version, "/events", pbl.Events)

	app.Handle(http.MethodGet, version, "/genesis/list", pbl.Genesis)
	app.Handle(http.MethodGet, version, "/accounts/list", pbl.Accounts)
	app.Handle(http.MethodGet, version, "/accounts/list/:account", pbl.Accounts)
	app.Handle(http.MethodGet, version, "/allowance/:owner/:spender", pbl.Allowance)

	app.Handle(http.MethodGet, version, "/profiles/:account", pbl.Profile)
	app.Handle(http.MethodGet, version, "/tracks/list", pbl.Tracks)
	app.Handle(http.MethodGet, version, "/tracks/:id", pbl.Track)
	app.Handle(http.MethodGet, version, "/tracks/:id/contributors", pbl.Contributors)
	app.Handle(http.MethodGet, version, "/tracks/:id/comments", pbl.Comments)
	app.Handle(http.MethodGet, version, "/tracks/:id/earnings", pbl.TrackEarnings)
	app.Handle(http.MethodGet, version, "/tracks/:id/earnings/:account", pbl.EarningsBalance)

	app.Handle(http.MethodPost, version, "/profiles/submit", pbl.SubmitProfile)
	app.Handle(http.MethodPost, version, "/tracks/submit", pbl.SubmitTrack)
	app.Handle(http.MethodPost, version, "/contributors/submit", pbl.SubmitContributor)
	app.Handle(http.MethodPost, version, "/approvals/submit", pbl.SubmitApprove)
	app.Handle(http.MethodPost, version, "/actions/submit", pbl.SubmitAction)
	app.Handle(http.MethodPost, version, "/withdrawals/submit", pbl.SubmitWithdraw)
}

// PrivateRoutes binds all the version 1 private routes.
func PrivateRoutes(app *web.App, cfg Config) {
	prv := private.Handlers{
		Log:   cfg.Log,
		State: cfg.State,
		NS:    cfg.NS,
	}

	app.Handle(http.MethodGet, version, "/node/status", prv.Status)
	app.Handle(http.MethodGet, version, "/node/fees", prv.Fees)
	app.Handle(http.MethodGet, version, "/node/platform/pool", prv.PlatformPool)
	app.Handle(http.MethodGet, version, "/node/journal/list/:from/:to", prv.JournalByRange)
}
