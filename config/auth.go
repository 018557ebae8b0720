package config

import "github.com/EricWal/hr-app/core/auth"

type AuthConfig struct {
	// Accounts replaces the built-in test accounts when set.
	Accounts   []auth.Account `mapstructure:"accounts" validate:"dive"`
	BcryptCost int            `mapstructure:"bcrypt_cost" default:"10" validate:"min=4,max=31"`
}
