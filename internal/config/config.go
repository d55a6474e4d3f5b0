package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Server struct {
		Addr string
	}
	Database struct {
		Path string
	}
	Redis struct {
		URL string
	}
	Log struct {
		Level string
	}
	Auth struct {
		JWTSecret       string
		TokenTTLMinutes int
		PasswordHasher  string
	}
	Storage struct {
		Bucket         string
		KeyPrefix      string
		Region         string
		Endpoint       string
		PublicBaseURL  string
		MaxUploadBytes int64
	}
	AWS struct {
		Profile string
	}
}

// Load reads configuration from environment variables and optional config files.
// Environment variables use the BLOG_ prefix, e.g. BLOG_AUTH_JWTSECRET.
func Load() (Config, error) {
	loadDotEnv(".env")

	v := viper.New()
	v.SetEnvPrefix("BLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", "0.0.0.0:8080")
	v.SetDefault("database.path", "data/blog.db")
	v.SetDefault("redis.url", "redis://localhost:6379/0")
	v.SetDefault("log.level", "info")
	v.SetDefault("auth.jwtsecret", "")
	v.SetDefault("auth.tokenttlminutes", 60)
	v.SetDefault("auth.passwordhasher", "md5")
	v.SetDefault("storage.bucket", "")
	v.SetDefault("storage.keyprefix", "uploads")
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.publicbaseurl", "")
	v.SetDefault("storage.maxuploadbytes", 10<<20)
	v.SetDefault("aws.profile", "")

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return fmt.Errorf("auth jwt secret is required")
	}
	if c.Auth.TokenTTLMinutes <= 0 {
		return fmt.Errorf("auth token ttl must be positive, got %d", c.Auth.TokenTTLMinutes)
	}
	if c.Storage.MaxUploadBytes <= 0 {
		return fmt.Errorf("storage max upload bytes must be positive, got %d", c.Storage.MaxUploadBytes)
	}
	return nil
}

func loadDotEnv(path string) {
	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.Index(line, "=")
		if idx <= 0 {
			continue
		}

		key := strings.TrimSpace(line[:idx])
		value := strings.Trim(strings.TrimSpace(line[idx+1:]), `"'`)
		if key == "" {
			continue
		}

		if _, exists := os.LookupEnv(key); !exists {
			_ = os.Setenv(key, value)
		}
	}
}
