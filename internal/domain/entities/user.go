package entities

import "time"

// Role drives route gating on the API and navigation on the dashboard.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleGerente  Role = "GERENTE"
	RoleVendedor Role = "VENDEDOR"
	RoleTecnico  Role = "TECNICO"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleGerente, RoleVendedor, RoleTecnico:
		return true
	}
	return false
}

// User is the login identity. A VENDEDOR user always has exactly one Vendedor.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Nome      string    `json:"nome" gorm:"size:120;not null"`
	Email     string    `json:"email" gorm:"size:160;not null;uniqueIndex"`
	SenhaHash string    `json:"-" gorm:"size:100;not null"`
	Role      Role      `json:"role" gorm:"size:20;not null"`
	Ativo     bool      `json:"ativo" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

// Vendedor is the salesperson profile, 1:1 with a User.
type Vendedor struct {
	ID         string    `json:"id" gorm:"primaryKey;size:36"`
	UserID     string    `json:"user_id" gorm:"size:36;not null;uniqueIndex"`
	Nome       string    `json:"nome" gorm:"size:120;not null"`
	Telefone   string    `json:"telefone" gorm:"size:30"`
	MetaMensal float64   `json:"meta_mensal"`
	Ativo      bool      `json:"ativo" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Vendedor) TableName() string { return "vendedores" }
