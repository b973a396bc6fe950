package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env         string
	Port        string
	MongoURI    string
	MongoDB     string
	UploadDir   string // where uploaded photos are written
	PublicDir   string // static assets (default image etc.)
	FrontendDir string // browser client pages
}

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	port := viper.GetString("PORT")
	if port == "" {
		port = "5000"
	}
	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	dbName := viper.GetString("MONGO_DB")
	if dbName == "" {
		dbName = "marketplace"
	}

	return &Config{
		Env:         env,
		Port:        port,
		MongoURI:    viper.GetString("MONGO_URI"),
		MongoDB:     dbName,
		UploadDir:   withDefault(viper.GetString("UPLOAD_DIR"), "./public/uploads"),
		PublicDir:   withDefault(viper.GetString("PUBLIC_DIR"), "./public"),
		FrontendDir: withDefault(viper.GetString("FRONTEND_DIR"), "./web"),
	}, nil
}

func withDefault(s, def string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}
