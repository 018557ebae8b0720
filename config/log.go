package config

type LogConfig struct {
	Level  string `mapstructure:"level" default:"info" validate:"oneof=debug info warn error fatal"`
	Format string `mapstructure:"format" default:"text" validate:"oneof=json text"`
}
