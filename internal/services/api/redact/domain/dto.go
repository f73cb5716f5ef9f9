// Package domain holds DTOs for the redact http and service contracts
package domain

import (
	"deepclean/internal/core/entity"
	txndom "deepclean/internal/services/txn/domain"
)

// RedactInput is a batch redaction request
type RedactInput struct {
	Transactions []txndom.Row `json:"transactions" validate:"required,min=1,max=5000,dive"`
	// Entities narrows detection to these types; empty means the default set
	Entities []entity.Type `json:"entities,omitempty" validate:"omitempty,max=64,dive,min=1,max=64"`
	// Language overrides the configured detection language tag
	Language string `json:"language,omitempty" validate:"omitempty,bcp47_language_tag" example:"en"`
}

// RedactResult is the batch redaction response. Transactions are new rows;
// the request rows are never mutated
type RedactResult struct {
	Transactions []txndom.Row        `json:"transactions"`
	Findings     map[entity.Type]int `json:"findings"`
	TotalFound   int                 `json:"total_found"`
	// FailedFields counts fields the engine could not analyze; those pass
	// through unredacted and are otherwise indistinguishable from clean text
	FailedFields int `json:"failed_fields"`
}
