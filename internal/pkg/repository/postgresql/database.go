package postgresql

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/Furoshaa/HowMuch/foundation/web"
	"github.com/Furoshaa/HowMuch/internal/auth"
	"github.com/Furoshaa/HowMuch/internal/pkg/config"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
)

// Database wraps bun with the helpers the repositories share.
type Database struct {
	*bun.DB
}

func NewDatabase(cfg *config.Config) *Database {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		cfg.DBUsername, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if cfg.DisableTLS {
		dsn += "?sslmode=disable"
	}

	sqlDB := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqlDB, pgdialect.New())
	db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(false)))

	return &Database{DB: db}
}

// CheckClaims returns the auth claims from the context, optionally checking
// the role. Repositories behind public routes do not call this.
func (d Database) CheckClaims(ctx context.Context, roles ...string) (auth.Claims, error) {
	claims, err := auth.GetClaims(ctx)
	if err != nil {
		return auth.Claims{}, err
	}
	if len(roles) > 0 && !claims.Authorized(roles...) {
		return auth.Claims{}, web.NewRequestError(errors.New("attempted action is not allowed"), http.StatusUnauthorized)
	}
	return claims, nil
}

// ClaimsUserID returns the authenticated user id when the request carries
// claims, nil otherwise. Used to fill audit columns on public routes too.
func (d Database) ClaimsUserID(ctx context.Context) *int {
	claims, ok := ctx.Value(auth.Key).(auth.Claims)
	if !ok {
		return nil
	}
	return &claims.UserId
}

// ValidateStruct checks that the named fields of a request struct are set:
// pointers non-nil, strings non-empty, ints non-zero.
func (d Database) ValidateStruct(v interface{}, requiredFields ...string) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}

	var missing []string
	for _, name := range requiredFields {
		f := rv.FieldByName(name)
		if !f.IsValid() {
			continue
		}
		switch f.Kind() {
		case reflect.Ptr, reflect.Interface:
			if f.IsNil() {
				missing = append(missing, name)
			}
		case reflect.String:
			if f.String() == "" {
				missing = append(missing, name)
			}
		case reflect.Int:
			if f.Int() == 0 {
				missing = append(missing, name)
			}
		}
	}
	if len(missing) > 0 {
		return web.NewRequestError(
			fmt.Errorf("required field(s) missing: %s", strings.Join(missing, ", ")),
			http.StatusBadRequest,
		)
	}

	return nil
}

// DeleteRow soft deletes by id and reports 404 when nothing matched.
func (d Database) DeleteRow(ctx context.Context, table string, id int) error {
	q := d.NewUpdate().Table(table).
		Where("deleted_at IS NULL AND id = ?", id).
		Set("deleted_at = ?", time.Now())
	if by := d.ClaimsUserID(ctx); by != nil {
		q.Set("deleted_by = ?", *by)
	}

	res, err := q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrapf(err, "deleting from %s", table), http.StatusInternalServerError)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "delete rows affected"), http.StatusInternalServerError)
	}
	if rows == 0 {
		return web.NewRequestError(errors.Errorf("%s not found", table), http.StatusNotFound)
	}

	return nil
}

// SQLSTATE classes the repositories care about.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// ErrStatus maps a driver error onto the HTTP status taxonomy: duplicate
// unique key 409, foreign key violation 400, no rows 404, anything else 500.
func ErrStatus(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return web.NewRequestError(errors.Errorf("%s: not found", op), http.StatusNotFound)
	}

	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		switch pgErr.Field('C') {
		case codeUniqueViolation:
			return web.NewRequestError(errors.Wrap(err, op), http.StatusConflict)
		case codeForeignKeyViolation:
			return web.NewRequestError(errors.Wrap(err, op), http.StatusBadRequest)
		}
	}

	return web.NewRequestError(errors.Wrap(err, op), http.StatusInternalServerError)
}
