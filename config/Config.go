package config

import (
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Stage            string        `env:"STAGE" envDefault:"dev"`
	Region           string        `env:"AWS_REGION" envDefault:"us-east-1"`
	DynamoDBEndpoint string        `env:"DYNAMODB_ENDPOINT"`
	TablePrefix      string        `env:"TABLE_PREFIX"`
	JWTSecret        string        `env:"JWT_SECRET"`
	TokenTTL         time.Duration `env:"TOKEN_TTL" envDefault:"720h"`
	HooksTopicArn    string        `env:"HOOKS_TOPIC_ARN"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
}

// TableName returns the physical name of a table, e.g. "realworld-groups-dev-Group".
func (c Config) TableName(base string) string {
	prefix := c.TablePrefix
	if prefix == "" {
		prefix = "realworld-groups-" + c.Stage + "-"
	}
	return prefix + base
}

func Parse() (Config, error) {
	return env.ParseAs[Config]()
}

var (
	once    sync.Once
	current Config
	loadErr error
)

// Get parses the environment on first use and returns the same Config for
// the lifetime of the process.
func Get() (Config, error) {
	once.Do(func() {
		current, loadErr = Parse()
	})
	return current, loadErr
}

// MustGet is Get for package initialisation; a malformed environment is fatal.
func MustGet() Config {
	cfg, err := Get()
	if err != nil {
		panic(err)
	}
	return cfg
}
