package config

// Config holds all application configuration.
type Config struct {
	App     AppConfig     `mapstructure:"app" validate:"required"`
	Console ConsoleConfig `mapstructure:"console" validate:"required"`
}

// AppConfig contains process-wide settings.
type AppConfig struct {
	LogLevel  string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"required,oneof=json text"`
}

// ConsoleConfig contains settings of the interactive front end.
// Layouts use Go reference-time notation: "2.01.2006" reads d.MM.yyyy and
// "15:04" reads HH:mm.
type ConsoleConfig struct {
	Locale     string `mapstructure:"locale" validate:"required,oneof=ru en"`
	DateLayout string `mapstructure:"date_layout" validate:"required"`
	TimeLayout string `mapstructure:"time_layout" validate:"required"`
}
