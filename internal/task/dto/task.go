package dto

// Wire names stay in Portuguese: the client was built against them.

type CreateTaskInput struct {
	Texto string `json:"texto"`
}

type UpdateTaskInput struct {
	Texto string `json:"texto"`
}

type TaskOutput struct {
	ID        int    `json:"id"`
	Texto     string `json:"texto"`
	Concluida int    `json:"concluida"`
}

type UpdatedTextOutput struct {
	ID    int    `json:"id"`
	Texto string `json:"texto"`
}

type ToggleOutput struct {
	NovoStatus int `json:"novoStatus"`
}
