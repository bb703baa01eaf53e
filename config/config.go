package config

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string `env:"PORT, default=8080"`
	Env         string `env:"ENV, default=development"`
	JWTSecret   string `env:"JWT_SECRET, default=dev_secret_change_me"`
	LogLevel    string `env:"LOG_LEVEL, default=info"`
	CORSOrigins string `env:"CORS_ORIGINS"`
	SeedDemo    bool   `env:"SEED_DEMO, default=false"`

	DB DBConfig
}

type DBConfig struct {
	// URL takes precedence over the discrete parts when set.
	URL    string `env:"MYSQL_URL"`
	AltURL string `env:"DATABASE_URL"`
	User   string `env:"DB_USER, default=root"`
	Pass   string `env:"DB_PASS"`
	Host   string `env:"DB_HOST, default=127.0.0.1"`
	Port   string `env:"DB_PORT, default=3306"`
	Name   string `env:"DB_NAME, default=stayhub"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// CORSOriginList splits CORS_ORIGINS on commas, defaulting to the wildcard.
func (c *Config) CORSOriginList() []string {
	raw := strings.TrimSpace(c.CORSOrigins)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// DSN resolves the MySQL DSN from MYSQL_URL/DATABASE_URL or from the discrete
// DB_* parts.
func (c *Config) DSN() (string, error) {
	raw := strings.TrimSpace(c.DB.URL)
	if raw == "" {
		raw = strings.TrimSpace(c.DB.AltURL)
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DB.User, c.DB.Pass, c.DB.Host, c.DB.Port, c.DB.Name,
	)
	return dsn, nil
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}
