package user

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Furoshaa/HowMuch/foundation/web"
	"github.com/Furoshaa/HowMuch/internal/entity"
	"github.com/Furoshaa/HowMuch/internal/pkg/repository/postgresql"
	"github.com/Furoshaa/HowMuch/internal/repository/postgres"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// GetByEmail returns the user with the password hash, for login only.
func (r Repository) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	var detail entity.User

	err := r.NewSelect().Model(&detail).
		Where("email = ? AND deleted_at IS NULL", email).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.User{}, web.NewRequestError(errors.New("this email isn't in our database"), http.StatusUnauthorized)
	}
	if err != nil {
		return entity.User{}, web.NewRequestError(errors.Wrap(err, "selecting user by email"), http.StatusInternalServerError)
	}

	return detail, nil
}

func (r Repository) GetByUsername(ctx context.Context, username string) (GetDetailByIdResponse, error) {
	var detail GetDetailByIdResponse

	err := r.QueryRowContext(ctx, `
		SELECT id, username, firstname, lastname, email
		FROM users
		WHERE deleted_at IS NULL AND username = $1
	`, username).Scan(
		&detail.ID,
		&detail.Username,
		&detail.Firstname,
		&detail.Lastname,
		&detail.Email,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDetailByIdResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "selecting user by username"), http.StatusInternalServerError)
	}

	return detail, nil
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	whereQuery := `
			WHERE
				u.deleted_at IS NULL
			`

	if filter.Search != nil {
		search := strings.Replace(*filter.Search, " ", "", -1)
		search = strings.Replace(search, "'", "''", -1)

		whereQuery += fmt.Sprintf(` AND
		(u.username ilike '%s' OR u.email ilike '%s')`, "%"+search+"%", "%"+search+"%")
	}
	orderQuery := "ORDER BY u.created_at desc"

	var limitQuery, offsetQuery string

	if filter.Page != nil && filter.Limit != nil {
		offset := (*filter.Page - 1) * (*filter.Limit)
		filter.Offset = &offset
	}

	if filter.Limit != nil {
		limitQuery += fmt.Sprintf(" LIMIT %d", *filter.Limit)
	}

	if filter.Offset != nil {
		offsetQuery += fmt.Sprintf(" OFFSET %d", *filter.Offset)
	}

	query := fmt.Sprintf(`
		SELECT
			u.id,
			u.username,
			u.firstname,
			u.lastname,
			u.email
		FROM users u

		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting users"), http.StatusInternalServerError)
	}
	defer rows.Close()

	list := []GetListResponse{}

	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.Username,
			&detail.Firstname,
			&detail.Lastname,
			&detail.Email); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning user list"), http.StatusInternalServerError)
		}

		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(u.id)
		FROM  users u
			%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning user count"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) GetDetailById(ctx context.Context, id int) (GetDetailByIdResponse, error) {
	var detail GetDetailByIdResponse

	err := r.QueryRowContext(ctx, `
		SELECT
			u.id,
			u.username,
			u.firstname,
			u.lastname,
			u.email
		FROM users u
		WHERE u.deleted_at IS NULL AND u.id = $1
	`, id).Scan(
		&detail.ID,
		&detail.Username,
		&detail.Firstname,
		&detail.Lastname,
		&detail.Email,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDetailByIdResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "selecting user detail"), http.StatusInternalServerError)
	}

	return detail, nil
}

// Create hashes the password, inserts the row and reads it back, so the
// response is exactly what the database now holds. The unique indexes on
// username/email surface duplicates as 409 through ErrStatus.
func (r Repository) Create(ctx context.Context, request CreateRequest) (GetDetailByIdResponse, error) {
	if err := r.ValidateStruct(&request, "Username", "Firstname", "Lastname", "Email", "Password"); err != nil {
		return GetDetailByIdResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
	if err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "hashing password"), http.StatusInternalServerError)
	}
	hashedPassword := string(hash)

	var response CreateResponse
	response.Username = request.Username
	response.Firstname = request.Firstname
	response.Lastname = request.Lastname
	response.Email = request.Email
	response.Password = &hashedPassword
	response.CreatedAt = time.Now()

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return GetDetailByIdResponse{}, postgresql.ErrStatus(err, "creating user")
	}

	return r.GetDetailById(ctx, response.ID)
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	q := r.NewUpdate().Table("users").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.Username != nil {
		q.Set("username = ?", request.Username)
	}
	if request.Firstname != nil {
		q.Set("firstname = ?", request.Firstname)
	}
	if request.Lastname != nil {
		q.Set("lastname = ?", request.Lastname)
	}
	if request.Email != nil {
		q.Set("email = ?", request.Email)
	}
	if request.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "hashing password"), http.StatusInternalServerError)
		}
		q.Set("password = ?", string(hash))
	}
	q.Set("updated_at = ?", time.Now())
	if by := r.ClaimsUserID(ctx); by != nil {
		q.Set("updated_by = ?", *by)
	}

	_, err := q.Exec(ctx)
	if err != nil {
		return postgresql.ErrStatus(err, "updating user")
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "users", id)
}
