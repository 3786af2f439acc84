package user

import (
	"context"

	"github.com/Furoshaa/HowMuch/internal/entity"
	"github.com/Furoshaa/HowMuch/internal/repository/postgres/user"
)

type User interface {
	GetList(ctx context.Context, filter user.Filter) ([]user.GetListResponse, int, error)
	GetDetailById(ctx context.Context, id int) (user.GetDetailByIdResponse, error)
	GetByUsername(ctx context.Context, username string) (user.GetDetailByIdResponse, error)
	GetByEmail(ctx context.Context, email string) (entity.User, error)

	Create(ctx context.Context, request user.CreateRequest) (user.GetDetailByIdResponse, error)
	UpdateColumns(ctx context.Context, request user.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}

type Schedule interface {
	Plans(ctx context.Context, userID int) ([]entity.WorkSchedule, error)
}

type Exception interface {
	Plans(ctx context.Context, userID int) ([]entity.WorkException, error)
}

type Session interface {
	Plans(ctx context.Context, userID int) ([]entity.WorkSession, error)
}
