package commands

import (
	"fmt"
	"log"

	"github.com/Furoshaa/HowMuch/internal/pkg/repository/postgresql"
)

type Scheme struct {
	Index       int
	Description string
	Query       string
}

var scheme = []Scheme{
	{
		Index:       1,
		Description: "Create type: day_of_week.",
		Query: `
        CREATE TYPE "day_of_week" AS ENUM
        ('monday', 'tuesday', 'wednesday', 'thursday', 'friday', 'saturday', 'sunday');`,
	},
	{
		Index:       2,
		Description: "Create type: exception_reason.",
		Query: `
        CREATE TYPE "exception_reason" AS ENUM
        ('vacation', 'sick', 'late', 'early_out', 'overtime', 'other');`,
	},
	{
		Index:       3,
		Description: "Create table: users.",
		Query: `
        CREATE TABLE IF NOT EXISTS users (
            id serial primary key,
            username varchar(255) not null,
            firstname varchar(255) not null,
            lastname varchar(255) not null,
            email varchar(255) not null,
            password varchar(255) not null,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       4,
		Description: "Unique username/email for live users.",
		Query: `
        CREATE UNIQUE INDEX IF NOT EXISTS users_username_key ON users (username) WHERE deleted_at IS NULL;
        CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (email) WHERE deleted_at IS NULL;`,
	},
	{
		Index:       5,
		Description: "Create table: work_schedule.",
		Query: `
        CREATE TABLE IF NOT EXISTS work_schedule (
            id serial primary key,
            user_id int not null references users(id) on delete cascade,
            day_of_week day_of_week not null,
            work_start time not null,
            break_start time not null,
            break_end time not null,
            work_end time not null,
            hourly_rate numeric(10, 2) not null,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );
        CREATE UNIQUE INDEX IF NOT EXISTS work_schedule_user_day_key
            ON work_schedule (user_id, day_of_week) WHERE deleted_at IS NULL;`,
	},
	{
		Index:       6,
		Description: "Create table: work_exceptions.",
		Query: `
        CREATE TABLE IF NOT EXISTS work_exceptions (
            id serial primary key,
            user_id int not null references users(id) on delete cascade,
            date date not null,
            reason exception_reason not null,
            work_start time,
            break_start time,
            break_end time,
            work_end time,
            hourly_rate numeric(10, 2),
            comment text,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );
        CREATE UNIQUE INDEX IF NOT EXISTS work_exceptions_user_date_key
            ON work_exceptions (user_id, date) WHERE deleted_at IS NULL;`,
	},
	{
		Index:       7,
		Description: "Create table: work_sessions.",
		Query: `
        CREATE TABLE IF NOT EXISTS work_sessions (
            id serial primary key,
            user_id int not null references users(id) on delete cascade,
            work_date date not null,
            work_start time not null,
            break_start time not null,
            break_end time not null,
            work_end time not null,
            hourly_rate numeric(10, 2) not null,
            is_auto_generated boolean default true,
            is_canceled boolean default false,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
}

// Migrate applies the whole scheme in order, without version bookkeeping.
func Migrate(db *postgresql.Database) {
	for _, s := range scheme {
		if _, err := db.Query(s.Query); err != nil {
			log.Fatalln("migrate error", err)
		}
	}
}

// MigrateUP applies outstanding scheme entries, tracking progress in
// schema_migrations and flagging a dirty version on failure.
func MigrateUP(db *postgresql.Database) {
	var (
		version int
		dirty   bool
		er      *string
	)
	err := db.QueryRow("SELECT version, dirty, error FROM schema_migrations").Scan(&version, &dirty, &er)
	if err != nil {
		if err.Error() == `ERROR: relation "schema_migrations" does not exist (SQLSTATE=42P01)` {
			if _, err = db.Exec(`
				CREATE TABLE IF NOT EXISTS schema_migrations (version int not null, dirty bool not null, error text);
				DELETE FROM schema_migrations;
				INSERT INTO schema_migrations (version, dirty) values (0, false);
			`); err != nil {
				log.Fatalln("migrate schema_migrations create error", err)
			}
			version = 0
			dirty = false
		} else {
			log.Fatalln("migrate schema_migrations scan: ", err)
		}
	}

	if dirty {
		for _, v := range scheme {
			if v.Index == version {
				if _, err = db.Exec(v.Query); err != nil {
					if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s'`, err.Error())); err != nil {
						log.Fatalln("migrate error", err)
					}
					log.Fatalln(fmt.Sprintf("migrate error version: %d", version), err)
				}
				if _, err = db.Exec(`UPDATE schema_migrations SET dirty = false, error = null`); err != nil {
					log.Fatalln("migrate error", err)
				}
			}
		}
	}

	for _, s := range scheme {
		if s.Index > version {
			if _, err = db.Exec(s.Query); err != nil {
				if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s', version = %d, dirty = true`, err.Error(), s.Index)); err != nil {
					log.Fatalln("migrate error", err)
				}
				log.Fatalln(fmt.Sprintf("migrate error version: %d", s.Index), err)
			}
			if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET version = %d`, s.Index)); err != nil {
				log.Fatalln("migrate error", err)
			}
		}
	}
}
