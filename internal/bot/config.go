package bot

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrMissingToken is returned when neither DISCORD_TOKEN nor
// DISCORD_TOKEN_FILE provides a token.
var ErrMissingToken = errors.New("discord token is not configured")

// Config holds the bot configuration loaded from environment variables.
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN"`
	// Contents of the file named by DISCORD_TOKEN_FILE.
	DiscordTokenFromFile string `env:"DISCORD_TOKEN_FILE,file"`
	// Commands are registered globally when empty.
	DiscordGuildID string `env:"DISCORD_GUILD_ID"`
}

// Token returns the configured token, preferring DISCORD_TOKEN.
func (c *Config) Token() string {
	if token := strings.TrimSpace(c.DiscordToken); token != "" {
		return token
	}
	return strings.TrimSpace(c.DiscordTokenFromFile)
}

// LoadEnvFiles loads the given dotenv files into the process environment.
// Variables that are already set are not overwritten and missing files are
// skipped.
func LoadEnvFiles(files ...string) error {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return nil
}

// LoadConfig loads configuration from environment variables.
// Returns an error if required fields are missing.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if cfg.Token() == "" {
		return nil, ErrMissingToken
	}

	return cfg, nil
}
