package request

type CreateResellerRequest struct {
	Name     string `json:"nome" binding:"required,min=2,max=100"`
	CPF      string `json:"cpf" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"senha" binding:"required,min=8,max=10"`
}

type LoginRequest struct {
	CPF      string `json:"cpf" binding:"required"`
	Password string `json:"senha" binding:"required"`
}
