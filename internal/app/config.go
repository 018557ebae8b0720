package app

import (
	"errors"
	"fmt"

	"github.com/EricWal/hr-app/config"
	"github.com/EricWal/hr-app/core/auth"
	"github.com/EricWal/hr-app/domain"
	"github.com/EricWal/hr-app/internal/store"
	"github.com/EricWal/hr-app/jobs"
	"github.com/go-playground/validator/v10"
	saltConfig "github.com/goto/salt/config"
	"github.com/mcuadros/go-defaults"
)

const EnvPrefix = "HRAPP"

type Config struct {
	Log     config.LogConfig       `mapstructure:"log"`
	Store   store.Config           `mapstructure:"store"`
	Quota   domain.QuotaPolicy     `mapstructure:"quota"`
	Profile domain.Employee        `mapstructure:"profile"`
	Auth    config.AuthConfig      `mapstructure:"auth"`
	Jobs    map[jobs.Type]jobs.Job `mapstructure:"jobs"`
}

// LoadConfig reads configFile, HRAPP_* environment variables and defaults.
// A missing file is not an error.
func LoadConfig(configFile string) (Config, error) {
	var cfg Config
	loader := saltConfig.NewLoader(
		saltConfig.WithFile(configFile),
		saltConfig.WithEnvPrefix(EnvPrefix),
		saltConfig.WithEnvKeyReplacer(".", "_"),
	)

	if err := loader.Load(&cfg); err != nil {
		if !errors.As(err, &saltConfig.ConfigFileNotFoundError{}) {
			return Config{}, err
		}
	}

	// zero values left by the file take their struct defaults
	defaults.SetDefaults(&cfg)
	applyFallbacks(&cfg)
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func applyFallbacks(cfg *Config) {
	if cfg.Profile == (domain.Employee{}) {
		cfg.Profile = config.DefaultProfile()
	}
	if len(cfg.Auth.Accounts) == 0 {
		cfg.Auth.Accounts = auth.DefaultAccounts()
	}
	if cfg.Jobs == nil {
		cfg.Jobs = map[jobs.Type]jobs.Job{}
	}
	if _, ok := cfg.Jobs[jobs.PendingRequestsReminder]; !ok {
		cfg.Jobs[jobs.PendingRequestsReminder] = jobs.Job{Enabled: true}
	}
}
