package config

import (
	"errors"
	"os"

	"github.com/ardanlabs/conf"
	"gopkg.in/yaml.v3"
)

// Config holds the file-backed settings (config.yaml).
type Config struct {
	DBUsername    string `yaml:"db_username"`
	DBPassword    string `yaml:"db_password"`
	DBHost        string `yaml:"db_host"`
	DBPort        string `yaml:"db_port"`
	DBName        string `yaml:"db_name"`
	DisableTLS    bool   `yaml:"disable_tls"`
	BaseUrl       string `yaml:"base_url"`
	JWTKey        string `yaml:"jwt_key"`
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
}

// Args are the command-line/environment settings, parsed with the HOWMUCH
// prefix (HOWMUCH_PORT, --port, ...).
type Args struct {
	ConfigFile string `conf:"default:config.yaml"`
	Port       string `conf:"default::8080"`
	Migrate    bool   `conf:"default:false"`
}

// ErrHelp signals that usage was printed and the process should exit clean.
var ErrHelp = errors.New("provided help")

func NewArgs() (*Args, string, error) {
	var args Args
	if err := conf.Parse(os.Args[1:], "HOWMUCH", &args); err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			usage, uerr := conf.Usage("HOWMUCH", &args)
			if uerr != nil {
				return nil, "", uerr
			}
			return nil, usage, ErrHelp
		}
		return nil, "", err
	}
	return &args, "", nil
}

func NewConfig(path string) (*Config, error) {
	var c Config

	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(yamlFile, &c)
	if err != nil {
		return nil, err
	}

	if c.DBUsername == "" || c.DBPassword == "" || c.DBHost == "" || c.DBName == "" {
		return nil, errors.New("missing required database configuration")
	}
	if c.JWTKey == "" {
		return nil, errors.New("missing jwt_key")
	}

	return &c, nil
}
