package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config は IDEASPARK_* 環境変数から読み込むアプリケーション設定です。
type Config struct {
	APIKey string `envconfig:"API_KEY"`
	// Model が空の場合は generator.DefaultModel が使われます。
	Model           string        `envconfig:"MODEL"`
	Timeout         time.Duration `envconfig:"TIMEOUT" default:"60s"`
	CompressImage   bool          `envconfig:"COMPRESS_IMAGE" default:"false"`
	CompressQuality int           `envconfig:"COMPRESS_QUALITY" default:"75"`
	Seed            *int32        `envconfig:"SEED"`
}

// Load は .env（存在する場合）を読み込んだ後、環境変数から設定を構築します。
// IDEASPARK_API_KEY が未設定の場合は GEMINI_API_KEY を使います。
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var c Config
	if err := envconfig.Process("ideaspark", &c); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	return &c, nil
}
