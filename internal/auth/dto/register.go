package dto

type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

type RegisterOutput struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}
