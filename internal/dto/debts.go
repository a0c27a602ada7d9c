package dto

type AddDebtRequestDTO struct {
	DebtorID    string  `json:"debtor_id" example:"discord:184301"`
	DebtorName  string  `json:"debtor_name" example:"Janek"`
	Amount      float64 `json:"amount" example:"25.5"`
	Description string  `json:"description" example:"pizza"`
}

type AddDebtResponseDTO struct {
	DebtorID    string  `json:"debtor_id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type SplitParticipantDTO struct {
	ID   string `json:"id" example:"discord:184301"`
	Name string `json:"name" example:"Janek"`
}

type SplitRequestDTO struct {
	Amount       float64               `json:"amount" example:"100"`
	Description  string                `json:"description" example:"kolacja"`
	Participants []SplitParticipantDTO `json:"participants"`
}

type SplitResponseDTO struct {
	PerPerson float64  `json:"per_person"`
	Debtors   []string `json:"debtors"`
}

type SummaryEntryDTO struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type DebtGroupDTO struct {
	Creditor     string            `json:"creditor"`
	Entries      []SummaryEntryDTO `json:"entries"`
	Total        float64           `json:"total"`
	Phone        *string           `json:"phone,omitempty"`
	PhoneMissing bool              `json:"phone_missing"`
}

type GetDebtsResponseDTO struct {
	Groups []DebtGroupDTO `json:"groups"`
	Total  float64        `json:"total"`
}

type CreditGroupDTO struct {
	Debtor  string            `json:"debtor"`
	Entries []SummaryEntryDTO `json:"entries"`
	Total   float64           `json:"total"`
}

type GetCreditsResponseDTO struct {
	Groups []CreditGroupDTO `json:"groups"`
	Total  float64          `json:"total"`
}
