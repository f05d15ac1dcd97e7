package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var (
	ErrMissingToken = errors.New("discord token is not set")
	ErrInvalidBurst = errors.New("handler rate burst must be at least 1 when rate limiting is enabled")
)

type Config struct {
	Token           string
	StatusChannelID string
	LogLevel        zerolog.Level
	AdminRoles      []string
	HandlerTimeout  time.Duration
	RateLimit       float64
	RateBurst       int
}

func setDefaults() {
	viper.SetDefault("bot.log_level", "info")
	viper.SetDefault("bot.admin_roles", []string{"Admin"})
	viper.SetDefault("handler.timeout", "30s")
	viper.SetDefault("handler.rate_limit", 1.0)
	viper.SetDefault("handler.rate_burst", 5)
}

// Load reads an optional .env file into the environment, then an optional
// config.toml from the working directory. Environment variables override the
// file, with dots in keys written as underscores (DISCORD_TOKEN for discord.token).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("could not read config file: %w", err)
		}
		log.Debug().Msg("no config file found, using environment only")
	}

	return fromViper()
}

func fromViper() (*Config, error) {
	setDefaults()

	token := viper.GetString("discord.token")
	if token == "" {
		return nil, ErrMissingToken
	}

	timeout, err := time.ParseDuration(viper.GetString("handler.timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid timeout for handler in config: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("handler timeout must be positive, got %s", timeout)
	}

	rateLimit := viper.GetFloat64("handler.rate_limit")
	rateBurst := viper.GetInt("handler.rate_burst")
	if rateLimit > 0 && rateBurst < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidBurst, rateBurst)
	}

	return &Config{
		Token:           token,
		StatusChannelID: viper.GetString("discord.status_channel_id"),
		LogLevel:        parseLogLevel(viper.GetString("bot.log_level")),
		AdminRoles:      adminRoles(),
		HandlerTimeout:  timeout,
		RateLimit:       rateLimit,
		RateBurst:       rateBurst,
	}, nil
}

// adminRoles reads bot.admin_roles. A plain string, as set through BOT_ADMIN_ROLES,
// is split on commas so role names may contain spaces.
func adminRoles() []string {
	raw, ok := viper.Get("bot.admin_roles").(string)
	if !ok {
		return viper.GetStringSlice("bot.admin_roles")
	}

	var roles []string
	for _, role := range strings.Split(raw, ",") {
		if role = strings.TrimSpace(role); role != "" {
			roles = append(roles, role)
		}
	}

	return roles
}

func parseLogLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
