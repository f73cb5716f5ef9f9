// Package domain holds DTOs for the scan http and service contracts
package domain

import (
	"deepclean/internal/core/candidate"
	"deepclean/internal/core/entity"
	txndom "deepclean/internal/services/txn/domain"
)

// ScanInput is a batch scan request. Same shape as a redaction request;
// scanning only differs in what comes back
type ScanInput struct {
	Transactions []txndom.Row `json:"transactions" validate:"required,min=1,max=5000,dive"`
	// Entities narrows detection to these types; empty means the default set
	Entities []entity.Type `json:"entities,omitempty" validate:"omitempty,max=64,dive,min=1,max=64"`
	// Language overrides the configured detection language tag
	Language string `json:"language,omitempty" validate:"omitempty,bcp47_language_tag" example:"en"`
}

// ScanResult carries the ranked review candidates. Row text is never touched
// on this path
type ScanResult struct {
	Candidates []candidate.Candidate `json:"candidates"`
	Count      int                   `json:"count"`
	// FailedFields counts fields the engine could not analyze
	FailedFields int `json:"failed_fields"`
}
