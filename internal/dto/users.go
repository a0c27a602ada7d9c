package dto

type RegisterRequestDTO struct {
	Phone string `json:"phone" example:"+48 600 100 200"`
}
