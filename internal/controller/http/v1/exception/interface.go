package exception

import (
	"context"

	"github.com/Furoshaa/HowMuch/internal/repository/postgres/exception"
)

type Exception interface {
	GetList(ctx context.Context, filter exception.Filter) ([]exception.GetListResponse, int, error)
	GetDetailById(ctx context.Context, id int) (exception.GetDetailByIdResponse, error)
	GetByUserID(ctx context.Context, userID int) ([]exception.GetListResponse, error)

	Create(ctx context.Context, request exception.CreateRequest) (exception.GetDetailByIdResponse, error)
	UpdateColumns(ctx context.Context, request exception.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}
