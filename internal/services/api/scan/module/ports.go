package module

import (
	"context"

	scandom "deepclean/internal/services/api/scan/domain"
	scansvc "deepclean/internal/services/api/scan/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptScanPort adapts the scan service to the domain port interface
type adaptScanPort struct{ svc scansvc.Service }

// Scan implements the domain ServicePort interface
func (a adaptScanPort) Scan(
	ctx context.Context,
	in scandom.ScanInput,
) (scandom.ScanResult, error) {
	return a.svc.Scan(ctx, in)
}
