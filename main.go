package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/Furoshaa/HowMuch/foundation/web"
	"github.com/Furoshaa/HowMuch/internal/auth"
	"github.com/Furoshaa/HowMuch/internal/commands"
	"github.com/Furoshaa/HowMuch/internal/pkg/config"
	"github.com/Furoshaa/HowMuch/internal/pkg/repository/postgresql"
	"github.com/Furoshaa/HowMuch/internal/router"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, config.ErrHelp) {
			os.Exit(0)
		}
		log.Fatalf("error: %v", err)
	}
}

func run() error {
	args, usage, err := config.NewArgs()
	if err != nil {
		if errors.Is(err, config.ErrHelp) {
			fmt.Println(usage)
		}
		return err
	}

	cfg, err := config.NewConfig(args.ConfigFile)
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	postgresDB := postgresql.NewDatabase(cfg)
	defer postgresDB.Close()

	if args.Migrate {
		commands.MigrateUP(postgresDB)
	}

	redisDB := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer redisDB.Close()

	a := auth.New(cfg.JWTKey, redisDB)

	r := router.NewRouter(web.NewApp(), postgresDB, redisDB, args.Port, a, cfg.BaseUrl)

	fmt.Printf("listening on %s\n", args.Port)
	return r.Init()
}
