package request

import (
	"registro_inpi/internal/domain/entities"
	"registro_inpi/internal/usecase"
)

// ProfileRequest is used for both registration and update.
type ProfileRequest struct {
	FullName       string `json:"full_name" example:"Maria Silva"`
	CompanyName    string `json:"company_name"`
	DocumentType   string `json:"document_type" example:"CPF"`
	DocumentNumber string `json:"document_number" example:"123.456.789-09"`
	Phone          string `json:"phone"`
}

func (r ProfileRequest) ToInput() usecase.ProfileInput {
	return usecase.ProfileInput{
		FullName:       r.FullName,
		CompanyName:    r.CompanyName,
		DocumentType:   entities.DocumentType(r.DocumentType),
		DocumentNumber: r.DocumentNumber,
		Phone:          r.Phone,
	}
}
