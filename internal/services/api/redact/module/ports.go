package module

import (
	"context"

	redactdom "deepclean/internal/services/api/redact/domain"
	redactsvc "deepclean/internal/services/api/redact/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptRedactPort adapts the redact service to the domain port interface
type adaptRedactPort struct{ svc redactsvc.Service }

// Redact implements the domain ServicePort interface
func (a adaptRedactPort) Redact(
	ctx context.Context,
	in redactdom.RedactInput,
) (redactdom.RedactResult, error) {
	return a.svc.Redact(ctx, in)
}
