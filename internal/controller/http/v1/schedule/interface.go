package schedule

import (
	"context"

	"github.com/Furoshaa/HowMuch/internal/repository/postgres/schedule"
)

type Schedule interface {
	GetList(ctx context.Context, filter schedule.Filter) ([]schedule.GetListResponse, int, error)
	GetDetailById(ctx context.Context, id int) (schedule.GetDetailByIdResponse, error)
	GetByUserID(ctx context.Context, userID int) ([]schedule.GetListResponse, error)

	Create(ctx context.Context, request schedule.CreateRequest) (schedule.GetDetailByIdResponse, error)
	UpdateColumns(ctx context.Context, request schedule.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}
