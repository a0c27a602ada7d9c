package dto

type PayRequestDTO struct {
	CreditorID   string  `json:"creditor_id" example:"discord:184301"`
	CreditorName string  `json:"creditor_name" example:"Marek"`
	Amount       float64 `json:"amount" example:"40"`
}

type PayResponseDTO struct {
	Outcome   string  `json:"outcome" example:"partial"`
	Shortfall float64 `json:"shortfall,omitempty"`
	Overpaid  float64 `json:"overpaid,omitempty"`
}
