package domain

import "context"

// ServicePort defines the service contract for redaction
type ServicePort interface {
	Redact(ctx context.Context, in RedactInput) (RedactResult, error)
}
