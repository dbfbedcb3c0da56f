// Package http provides HTTP transport for the number-range entity
package http

import (
	stdhttp "net/http"
	"strconv"

	"entex/internal/modkit/httpkit"
	"entex/internal/services/api/entitykit"
	"entex/internal/services/api/numrange/domain"
)

// Register mounts the number-range endpoints
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
	q := r.URL.Query()
	in := domain.DetectInput{
		BaseInput: entitykit.FromQuery(r),
		UnitType:  q.Get("unit_type"),
	}
	if v, err := strconv.Atoi(q.Get("min_number_digits")); err == nil {
		in.MinNumberDigits = v
	}
	if v, err := strconv.Atoi(q.Get("max_number_digits")); err == nil {
		in.MaxNumberDigits = v
	}
	return h.detect(r, in)
}
