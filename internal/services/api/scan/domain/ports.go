package domain

import "context"

// ServicePort defines the service contract for scanning
type ServicePort interface {
	Scan(ctx context.Context, in ScanInput) (ScanResult, error)
}
