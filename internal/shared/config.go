package shared

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	MySQLDSN    string
	CORSOrigins []string
}

// Load reads configuration from the environment, after loading a .env file
// when one exists next to the binary. The DSN can be given whole via
// MYSQL_DSN or assembled from the DB_* parts the .env convention uses.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file, using process environment")
	}

	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ""),
		MySQLDSN:    env("MYSQL_DSN", ""),
		CORSOrigins: strings.Split(env("CORS_ORIGINS", "*"), ","),
	}
	if c.MySQLDSN == "" {
		c.MySQLDSN = dsnFromParts()
	}
	return c
}

func dsnFromParts() string {
	host := env("DB_HOST", "localhost")
	port := env("DB_PORT", "3306")
	name := env("DB_NAME", "orizon")
	user := env("DB_USER", "root")
	pass := env("DB_PASS", "root")
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4,utf8&loc=UTC",
		user, pass, host, port, name)
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
