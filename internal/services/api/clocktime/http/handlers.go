// Package http provides HTTP transport for the time entity
package http

import (
	stdhttp "net/http"

	"entex/internal/modkit/httpkit"
	"entex/internal/services/api/clocktime/domain"
	"entex/internal/services/api/entitykit"
)

// Register mounts the time endpoints
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.DetectInput](r, "/", h.detect)
	httpkit.Get(r, "/", h.detectGet)
}

type handlers struct{ svc domain.ServicePort }

func (h *handlers) detect(r *stdhttp.Request, in domain.DetectInput) (any, error) {
	if in.Message.Bulk() {
		return h.svc.DetectBulk(r.Context(), in)
	}
	return h.svc.Detect(r.Context(), in)
}

func (h *handlers) detectGet(r *stdhttp.Request) (any, error) {
	return h.detect(r, domain.DetectInput{BaseInput: entitykit.FromQuery(r)})
}
