package request

import "registro_inpi/internal/domain/entities"

type PayRequest struct {
	PaymentMethod string `json:"payment_method" example:"pix"`
}

func (r PayRequest) Method() entities.PaymentMethod {
	return entities.PaymentMethod(r.PaymentMethod)
}
