package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API        *APIConfig        `mapstructure:"api"`
	Gin        *GinConfig        `mapstructure:"gin"`
	Postgres   *PostgresConfig   `mapstructure:"postgres"`
	Cloudinary *CloudinaryConfig `mapstructure:"cloudinary"`
	Upload     *UploadConfig     `mapstructure:"upload"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	BaseURL            string   `mapstructure:"base_url"`
	Port               string   `mapstructure:"port"`
	JWTSigningKey      string   `mapstructure:"jwt_signing_key"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"db_name"`
}

type CloudinaryConfig struct {
	CloudName string `mapstructure:"cloud_name"`
	APIKey    string `mapstructure:"api_key"`
	APISecret string `mapstructure:"api_secret"`
}

type UploadConfig struct {
	// MaxFileSize is the per-file ceiling in bytes, applied to every slot.
	MaxFileSize int64 `mapstructure:"max_file_size"`
}

func Load(configPath string) (*AppConfig, error) {
	viper.SetConfigFile(configPath)

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := viper.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	if conf.Upload == nil {
		conf.Upload = &UploadConfig{}
	}
	if conf.Upload.MaxFileSize <= 0 {
		conf.Upload.MaxFileSize = 100 << 20
	}

	return conf, nil
}

// Watch re-reads the config file in place when it changes on disk.
func Watch(conf *AppConfig) {
	viper.OnConfigChange(func(e fsnotify.Event) {
		if err := viper.Unmarshal(conf); err != nil {
			zap.L().Warn("failed to reload config", zap.Error(err))
			return
		}

		zap.L().Info("config reloaded", zap.String("file", e.Name))
	})
	viper.WatchConfig()
}
