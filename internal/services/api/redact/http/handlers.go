// Package http provides http transport for redaction
package http

import (
	stdhttp "net/http"

	"deepclean/internal/modkit/httpkit"
	"deepclean/internal/services/api/redact/domain"
	svc "deepclean/internal/services/api/redact/service"
)

// Register mounts the redact endpoint on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.RedactInput](r, "/", h.redact)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /redact Redact redactBatch
// @Summary Redact sensitive identifiers in a batch of transactions
// @Tags Redact
// @Accept json
// @Produce json
// @Param payload body domain.RedactInput true "Batch"
// @Success 200 {object} domain.RedactResult "ok"
// @Router /redact [post]
func (h *handlers) redact(r *stdhttp.Request, in domain.RedactInput) (any, error) {
	return h.svc.Redact(r.Context(), in)
}
