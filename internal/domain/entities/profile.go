package entities

import (
	"strings"
	"time"
	"unicode"
)

// DocumentType identifies the Brazilian taxpayer document of a profile.
type DocumentType string

const (
	DocumentTypeCPF  DocumentType = "CPF"
	DocumentTypeCNPJ DocumentType = "CNPJ"
)

// Valid reports whether digits (punctuation stripped) has the length the
// document type requires: 11 for CPF, 14 for CNPJ.
func (d DocumentType) Valid(number string) bool {
	digits := OnlyDigits(number)
	switch d {
	case DocumentTypeCPF:
		return len(digits) == 11
	case DocumentTypeCNPJ:
		return len(digits) == 14
	}
	return false
}

func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Role is resolved from the identity provider claims, never from profile data.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Identity is the authenticated caller as reported by the identity provider.
type Identity struct {
	UserID string
	Email  string
	Role   Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Profile is the user profile persisted in the `profiles` table.
//
// Storage model (DynamoDB):
//   - PK: id (identity provider user id)
type Profile struct {
	ID             string       `json:"id"`
	Email          string       `json:"email"`
	FullName       string       `json:"full_name"`
	CompanyName    string       `json:"company_name,omitempty"`
	DocumentType   DocumentType `json:"document_type"`
	DocumentNumber string       `json:"document_number"`
	Phone          string       `json:"phone,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
