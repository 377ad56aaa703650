package internal

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// ICSource selects where information content values come from.
type ICSource string

const (
	ICSourceNone      ICSource = "none"
	ICSourceSQLite    ICSource = "sqlite"
	ICSourceRemote    ICSource = "remote"
	ICSourceIntrinsic ICSource = "intrinsic"
)

type Config struct {
	Env          RunEnv        `envconfig:"ENV" default:"development"`
	EchoAddr     string        `envconfig:"ECHO_ADDR" default:":8080"`
	WordNetFile  string        `envconfig:"WORDNET_FILE" default:"turkish_wordnet.xml"`
	ICSource     ICSource      `envconfig:"IC_SOURCE" default:"none"`
	ICDBPath     string        `envconfig:"IC_DB_PATH" default:"information_content.db"`
	ICUrl        string        `envconfig:"IC_URL"`
	BatchWorkers int           `envconfig:"BATCH_WORKERS" default:"8"`
	SuggestLimit int           `envconfig:"SUGGEST_LIMIT" default:"5"`
	HTTPTimeout  time.Duration `envconfig:"HTTP_TIMEOUT" default:"5s"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
