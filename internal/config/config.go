package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config carries the app settings. Everything has a default and can be
// overridden through STOREFRONT_* environment variables, e.g.
// STOREFRONT_LOGIN_MAX_ATTEMPTS=5.
type Config struct {
	MaxLoginAttempts int
	CurrencySymbol   string
	TokenTTL         time.Duration
	TokenSecret      string
}

func Load() Config {
	v := viper.New()
	v.SetDefault("login.max_attempts", 3)
	v.SetDefault("currency.symbol", "R$")
	v.SetDefault("session.token_ttl", 15*time.Minute)
	v.SetDefault("session.token_secret", "super-secret-key") // move to env in prod
	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return Config{
		MaxLoginAttempts: v.GetInt("login.max_attempts"),
		CurrencySymbol:   v.GetString("currency.symbol"),
		TokenTTL:         v.GetDuration("session.token_ttl"),
		TokenSecret:      v.GetString("session.token_secret"),
	}
}
