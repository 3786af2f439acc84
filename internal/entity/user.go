package entity

import (
	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users"`

	BasicEntity
	Username  *string `json:"username"  bun:"username"`
	Firstname *string `json:"firstname" bun:"firstname"`
	Lastname  *string `json:"lastname"  bun:"lastname"`
	Email     *string `json:"email"     bun:"email"`
	Password  *string `json:"password"  bun:"password"`
}
