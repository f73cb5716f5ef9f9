// Package domain holds the transaction row shared by the redact and scan
// services. Only the merchant and description fields are ever scanned; the
// rest ride along untouched
package domain

// Scannable field names, used in candidate locations and logs
const (
	FieldMerchant    = "merchant"
	FieldDescription = "description"
)

// Row is one transaction record. The pipeline never mutates a Row it was
// given; redaction builds a new one
type Row struct {
	Date        string  `json:"date"        example:"2026-08-12"`
	Merchant    string  `json:"merchant"    validate:"required" example:"Tim Hortons"`
	Description string  `json:"description" validate:"required" example:"Call John at 555-123-4567"`
	Category    string  `json:"category"    example:"dining"`
	Amount      float64 `json:"amount"      example:"12.50"`
	Type        string  `json:"type"        example:"debit"`
}

// Field pairs a scannable field name with its text
type Field struct {
	Name string
	Text string
}

// Fields returns the scannable fields in stable order
func (r Row) Fields() []Field {
	return []Field{
		{Name: FieldMerchant, Text: r.Merchant},
		{Name: FieldDescription, Text: r.Description},
	}
}
