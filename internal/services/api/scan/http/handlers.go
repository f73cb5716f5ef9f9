// Package http provides http transport for scanning
package http

import (
	stdhttp "net/http"

	"deepclean/internal/modkit/httpkit"
	"deepclean/internal/services/api/scan/domain"
	svc "deepclean/internal/services/api/scan/service"
)

// Register mounts the scan endpoint on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.ScanInput](r, "/", h.scan)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /scan Scan scanBatch
// @Summary Surface ranked review candidates from a batch of transactions
// @Tags Scan
// @Accept json
// @Produce json
// @Param payload body domain.ScanInput true "Batch"
// @Success 200 {object} domain.ScanResult "ok"
// @Router /scan [post]
func (h *handlers) scan(r *stdhttp.Request, in domain.ScanInput) (any, error) {
	return h.svc.Scan(r.Context(), in)
}
