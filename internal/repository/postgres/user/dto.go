package user

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Search *string
}

type SignInRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" form:"refresh_token"`
}

type GetListResponse struct {
	ID        int     `json:"id"`
	Username  *string `json:"username"`
	Firstname *string `json:"firstname"`
	Lastname  *string `json:"lastname"`
	Email     *string `json:"email"`
}

type GetDetailByIdResponse struct {
	ID        int     `json:"id"`
	Username  *string `json:"username"`
	Firstname *string `json:"firstname"`
	Lastname  *string `json:"lastname"`
	Email     *string `json:"email"`
}

type CreateRequest struct {
	Username  *string `json:"username"  form:"username"`
	Firstname *string `json:"firstname" form:"firstname"`
	Lastname  *string `json:"lastname"  form:"lastname"`
	Email     *string `json:"email"     form:"email"`
	Password  *string `json:"password"  form:"password"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:users"`

	ID        int       `json:"id" bun:"id,pk,autoincrement"`
	Username  *string   `json:"username"  bun:"username"`
	Firstname *string   `json:"firstname" bun:"firstname"`
	Lastname  *string   `json:"lastname"  bun:"lastname"`
	Email     *string   `json:"email"     bun:"email"`
	Password  *string   `json:"-"         bun:"password"`
	CreatedAt time.Time `json:"-"         bun:"created_at"`
}

type UpdateRequest struct {
	ID        int     `json:"id" form:"id"`
	Username  *string `json:"username"  form:"username"`
	Firstname *string `json:"firstname" form:"firstname"`
	Lastname  *string `json:"lastname"  form:"lastname"`
	Email     *string `json:"email"     form:"email"`
	Password  *string `json:"password"  form:"password"`
}
