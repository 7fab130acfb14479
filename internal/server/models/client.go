package models

// Client is a customer record. Email and CPF are unique.
type Client struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name" validate:"required,max=255"`
	Email string `db:"email" json:"email" validate:"required,email,max=255"`
	CPF   string `db:"cpf" json:"cpf" validate:"required,numeric,len=11"`
}

// ClientUpdate is a partial update; nil fields are left unchanged.
type ClientUpdate struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Email *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	CPF   *string `json:"cpf,omitempty" validate:"omitempty,numeric,len=11"`
}

// ClientFilter narrows ListClients. Zero values match everything.
type ClientFilter struct {
	Name   string
	Email  string
	Offset int
	Limit  int
}
