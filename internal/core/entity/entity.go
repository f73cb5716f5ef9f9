// Package entity defines the closed set of entity types the pipeline knows
// about and the redaction literal substituted for each
package entity

// Type tags a detected span with a category (person name, phone number, ...)
// The recognition engine may emit types outside this set; those fall back to
// the DefaultLiteral when redacted
type Type string

const (
	// TypePerson is a person name
	TypePerson Type = "PERSON"
	// TypePhoneNumber is a phone number
	TypePhoneNumber Type = "PHONE_NUMBER"
	// TypeEmailAddress is an email address
	TypeEmailAddress Type = "EMAIL_ADDRESS"
	// TypeCreditCard is a payment card number
	TypeCreditCard Type = "CREDIT_CARD"
	// TypeUSSSN is a US social security number
	TypeUSSSN Type = "US_SSN"
	// TypeUSBankNumber is a US bank account number
	TypeUSBankNumber Type = "US_BANK_NUMBER"
	// TypeIBAN is an international bank account number
	TypeIBAN Type = "IBAN_CODE"
	// TypeUSPassport is a US passport number
	TypeUSPassport Type = "US_PASSPORT"
	// TypeUSDriverLicense is a US driver license number
	TypeUSDriverLicense Type = "US_DRIVER_LICENSE"
	// TypeIPAddress is an IPv4 or IPv6 address
	TypeIPAddress Type = "IP_ADDRESS"
	// TypeLocation is a physical location
	TypeLocation Type = "LOCATION"
	// TypeURL is a web address
	TypeURL Type = "URL"
)

// DefaultLiteral replaces spans whose type has no dedicated literal
const DefaultLiteral = "[REDACTED]"

// Defaults returns the default detection allow-list, financial-focused
// Callers own the returned slice
func Defaults() []Type {
	return []Type{
		TypePerson,
		TypePhoneNumber,
		TypeEmailAddress,
		TypeCreditCard,
		TypeUSSSN,
		TypeUSBankNumber,
		TypeIBAN,
		TypeUSPassport,
		TypeUSDriverLicense,
		TypeIPAddress,
		TypeLocation,
		TypeURL,
	}
}

// Literal returns the replacement text for a type. Unknown types get
// DefaultLiteral so an engine upgrade can never leak raw text through
func Literal(t Type) string {
	switch t {
	case TypePerson:
		return "[PERSON]"
	case TypePhoneNumber:
		return "[PHONE]"
	case TypeEmailAddress:
		return "[EMAIL]"
	case TypeCreditCard:
		return "****"
	case TypeUSSSN:
		return "[SSN]"
	case TypeUSBankNumber:
		return "[ACCOUNT]"
	case TypeIBAN:
		return "[IBAN]"
	case TypeUSPassport:
		return "[PASSPORT]"
	case TypeUSDriverLicense:
		return "[LICENSE]"
	case TypeIPAddress:
		return "[IP]"
	case TypeLocation:
		return "[LOCATION]"
	case TypeURL:
		return "[URL]"
	default:
		return DefaultLiteral
	}
}

// Set is a membership view over an allow-list
type Set map[Type]struct{}

// NewSet builds a Set from types, skipping empties
func NewSet(ts []Type) Set {
	s := make(Set, len(ts))
	for _, t := range ts {
		if t == "" {
			continue
		}
		s[t] = struct{}{}
	}
	return s
}

// Has reports whether t is in the set
func (s Set) Has(t Type) bool {
	_, ok := s[t]
	return ok
}

// Resolve returns the request-supplied allow-list when non-empty,
// otherwise the default set
func Resolve(requested []Type) []Type {
	if len(requested) > 0 {
		return requested
	}
	return Defaults()
}
