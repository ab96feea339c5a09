package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath     = ".env"
	DefaultPort = 3000
	EnvLocal    = "local"
	EnvDev      = "dev"
	EnvProd     = "prod"
)

type Config struct {
	Env    string
	Server server
	Logger logger
}

type server struct {
	Port int
}

type logger struct {
	LogLevel string
}

// Load читает .env (если он есть) и переменные окружения.
// Отсутствующий .env не ошибка, битый - ошибка.
func Load() (*Config, error) {
	return loadFrom(envPath)
}

func loadFrom(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("app_env", EnvLocal)
	v.SetDefault("log_level", "info")

	return load(v), nil
}

func load(v *viper.Viper) *Config {
	return &Config{
		Env:    v.GetString("app_env"),
		Server: server{Port: ResolvePort(v.GetString("port"))},
		Logger: logger{LogLevel: v.GetString("log_level")},
	}
}

// ResolvePort reads PORT the way a JavaScript Number() cast does: decimal
// with optional sign, fraction and exponent, or 0x/0o/0b integers. Empty,
// non-numeric, fractional, zero and out of range values give DefaultPort.
func ResolvePort(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return DefaultPort
	}

	var (
		n   float64
		err error
	)
	if base, digits, ok := radixPrefix(s); ok {
		var u uint64
		u, err = strconv.ParseUint(digits, base, 64)
		n = float64(u)
	} else {
		n, err = strconv.ParseFloat(s, 64)
		if err == nil && strings.ContainsAny(s, "xXpP") {
			// hex floats are not numbers for JavaScript
			err = strconv.ErrSyntax
		}
	}

	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) || n != math.Trunc(n) || n < 1 || n > 65535 {
		return DefaultPort
	}
	return int(n)
}

func radixPrefix(s string) (int, string, bool) {
	if len(s) < 3 || s[0] != '0' {
		return 0, "", false
	}

	switch s[1] {
	case 'x', 'X':
		return 16, s[2:], true
	case 'o', 'O':
		return 8, s[2:], true
	case 'b', 'B':
		return 2, s[2:], true
	}
	return 0, "", false
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// BaseURL is what gets printed once the server is up.
func (c *Config) BaseURL() string {
	return fmt.Sprintf("http://localhost:%d", c.Server.Port)
}
