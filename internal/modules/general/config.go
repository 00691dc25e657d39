package general

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/disgoorg/snowflake/v2"
)

// ErrZeroAdminID is returned when ADMIN_USER_IDS contains the zero ID, which
// is reserved for requesters whose ID cannot be read.
var ErrZeroAdminID = errors.New("admin user id must not be zero")

// Config holds the general module configuration.
type Config struct {
	// Users allowed to run /shutdown. Empty allows everyone.
	AdminUserIDs      []snowflake.ID `env:"ADMIN_USER_IDS"      envSeparator:","`
	ShutdownDenialTTL time.Duration  `env:"SHUTDOWN_DENIAL_TTL" envDefault:"5s"`
}

func parseConfig() (*Config, error) {
	cfg := &Config{}
	err := env.ParseWithOptions(cfg, env.Options{
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(snowflake.ID(0)): func(v string) (any, error) {
				id, err := snowflake.Parse(strings.TrimSpace(v))
				if err != nil {
					return nil, err
				}
				if id == 0 {
					return nil, ErrZeroAdminID
				}
				return id, nil
			},
		},
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
