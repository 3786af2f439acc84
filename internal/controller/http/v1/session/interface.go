package session

import (
	"context"

	"github.com/Furoshaa/HowMuch/internal/repository/postgres/session"
	"github.com/Furoshaa/HowMuch/internal/repository/postgres/user"
)

type Session interface {
	GetList(ctx context.Context, filter session.Filter) ([]session.GetListResponse, int, error)
	GetDetailById(ctx context.Context, id int) (session.GetDetailByIdResponse, error)
	GetByUserID(ctx context.Context, userID int) ([]session.GetListResponse, error)

	Create(ctx context.Context, request session.CreateRequest) (session.GetDetailByIdResponse, error)
	UpdateColumns(ctx context.Context, request session.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}

type User interface {
	GetDetailById(ctx context.Context, id int) (user.GetDetailByIdResponse, error)
}
