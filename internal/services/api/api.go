// Package api provides the HTTP API for the application
package api

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"entex/internal/platform/config"
	perr "entex/internal/platform/errors"
	"entex/internal/platform/logger"
	phttp "entex/internal/platform/net/http"
	"entex/internal/platform/store"

	"entex/internal/modkit"
	"entex/internal/modkit/httpkit"
	"entex/internal/modkit/module"

	clocktimemod "entex/internal/services/api/clocktime/module"
	datemod "entex/internal/services/api/date/module"
	metamod "entex/internal/services/api/meta/module"
	numbermod "entex/internal/services/api/number/module"
	numrangemod "entex/internal/services/api/numrange/module"
	phonemod "entex/internal/services/api/phone/module"
	lexsvc "entex/internal/services/lexicon/service"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableProfiler bool

	// BearerToken gates every entity route when set
	BearerToken string
}

// tokenPort is a static-token AuthPort for single-tenant deployments
type tokenPort struct{ token string }

func (p tokenPort) Parse(r *http.Request) (string, string, error) {
	got, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(p.token)) != 1 {
		return "", "", perr.Unauthorizedf("invalid bearer token")
	}
	return "api", "", nil
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// The lexicon service overlays DB variants on the embedded packs. Without
	// Postgres it serves the embedded packs alone.
	packs := lexsvc.New(deps.PG)

	mods := []module.Module{
		metamod.New(deps),
		datemod.New(deps, packs),
		clocktimemod.New(deps),
		numbermod.New(deps),
		numrangemod.New(deps),
		phonemod.New(deps),
	}

	// versioned API with a common middleware stack
	stack := httpkit.CommonStack()
	if opt.BearerToken != "" {
		stack = append(stack, httpkit.Auth(tokenPort{token: opt.BearerToken}))
	}
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
