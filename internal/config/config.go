package config

type Config struct {
	Storage    StorageConfig  `mapstructure:"storage"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	ConfigPath string         `mapstructure:"-"`
}

type StorageConfig struct {
	// Backend selects the snapshot store: "file" or "sqlite".
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
}

type DefaultsConfig struct {
	Currency string `mapstructure:"currency"`
}

func NewDefault() *Config {
	return &Config{
		Storage:  StorageConfig{Backend: "file", Path: ""},
		Defaults: DefaultsConfig{Currency: "USD"},
	}
}
