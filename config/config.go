package config

import (
	"log"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/spf13/viper"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init loads configuration from config.yaml (optional) with env overrides.
// Every key has a default so the service runs without a config file.
func Init() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("database.path", "rex_dinner.db")
	viper.SetDefault("auth.jwt_secret", "rex_dinner_super_secret_2024")
	viper.SetDefault("discord.api_base", "https://discord.com/api/v10")
	viper.SetDefault("discord.token", "")
	viper.SetDefault("cache.size", 64)
	viper.SetDefault("cache.ttl_seconds", 60)

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("Failed to read config file: %v", err)
		}
	}
}

// JWTSecret returns the token signing key
func JWTSecret() []byte {
	return []byte(viper.GetString("auth.jwt_secret"))
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(viper.GetString("database.path")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
}
