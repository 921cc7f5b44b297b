package i18n

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	ErrNilConfig           = errors.New("i18n: config pointer is nil")
	ErrFailedToParseConfig = errors.New("i18n: failed to parse config from environment")
)

var defaultEnvLoaded sync.Once

// LoadConfig fills a config struct (PostgresConfig, RedisConfig or your own)
// from environment variables. The default .env file is loaded once per
// process before parsing; a missing .env file is not an error.
//
// Example:
//
//	var cfg i18n.RedisConfig
//	if err := i18n.LoadConfig(&cfg); err != nil {
//		return err
//	}
//	adapter, err := i18n.NewRedisAdapter(ctx, cfg)
func LoadConfig[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file might not exist and that's ok.
		_ = godotenv.Load()
	})

	if v == nil {
		return ErrNilConfig
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrFailedToParseConfig, err)
	}
	return nil
}
