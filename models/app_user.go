package models

import "time"

const (
	RoleAdmin           = "admin"
	RoleBillingOperator = "billing_operator"
)

type AppUser struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Username  string    `json:"username" db:"username"`
	Role      string    `json:"role" db:"role"`
	Password  string    `json:"password,omitempty" db:"password_hash"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
