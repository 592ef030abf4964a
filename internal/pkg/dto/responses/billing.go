package responses

import "hospital-service/internal/app/models"

type PaymentRecorded struct {
	Payment models.Payment `json:"payment"`
	Billing models.Billing `json:"billing"`
}
