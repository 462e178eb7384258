package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendDynamoDB = "dynamodb"
	BackendSupabase = "supabase"
)

// Config is the full configuration surface of the service.
type Config struct {
	Server   ServerConfig
	Backend  string
	DynamoDB DynamoDBConfig
	Photos   PhotoStorageConfig
	Supabase SupabaseConfig
	Auth     AuthConfig
	Tags     TagConfig
	LogLevel string
}

type ServerConfig struct {
	Port               string
	CORSAllowedOrigins []string
}

// DynamoDBConfig holds connection options for the AWS backend. The table
// names are reused as PostgREST table names by the supabase backend.
type DynamoDBConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	RepairsTable    string
	StockTable      string
}

// PhotoStorageConfig configures where device photos are uploaded.
//
// With the dynamodb backend photos go to S3; PublicBaseURL is prefixed to the
// object key to build the URL stored on the job.
type PhotoStorageConfig struct {
	Bucket        string
	S3Endpoint    string
	PublicBaseURL string
}

type SupabaseConfig struct {
	URL    string
	APIKey string
}

type AuthConfig struct {
	JWTSecret         string
	SessionTTL        time.Duration
	SweepCronSchedule string
}

type TagConfig struct {
	UniquenessCheck bool
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// A missing .env is fine when configuration comes from the environment.
		_ = godotenv.Load()
	}

	ttl, err := time.ParseDuration(getenvWithDefault("SESSION_TTL", "12h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:               getenvWithDefault("APP_PORT", "8080"),
			CORSAllowedOrigins: splitList(getenvWithDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		},
		Backend: strings.ToLower(getenvWithDefault("BACKEND", BackendDynamoDB)),
		DynamoDB: DynamoDBConfig{
			Region:          getenvWithDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:     getenvWithDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvWithDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
			RepairsTable:    getenvWithDefault("REPAIRS_TABLE", "repairs"),
			StockTable:      getenvWithDefault("STOCK_TABLE", "stock_items"),
		},
		Photos: PhotoStorageConfig{
			Bucket:        getenvWithDefault("PHOTO_BUCKET", "damaged-devices"),
			S3Endpoint:    os.Getenv("S3_ENDPOINT"),
			PublicBaseURL: os.Getenv("PHOTO_PUBLIC_BASE_URL"),
		},
		Supabase: SupabaseConfig{
			URL:    os.Getenv("SUPABASE_URL"),
			APIKey: os.Getenv("SUPABASE_KEY"),
		},
		Auth: AuthConfig{
			JWTSecret:         os.Getenv("JWT_SECRET"),
			SessionTTL:        ttl,
			SweepCronSchedule: getenvWithDefault("SESSION_SWEEP_SCHEDULE", "@every 5m"),
		},
		Tags: TagConfig{
			UniquenessCheck: parseBool(os.Getenv("TAG_UNIQUENESS_CHECK")),
		},
		LogLevel: getenvWithDefault("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("APP_PORT must be numeric, got %q", c.Server.Port)
	}

	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET must be provided")
	}
	if c.Auth.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.Auth.SweepCronSchedule == "" {
		return errors.New("SESSION_SWEEP_SCHEDULE must not be empty")
	}

	if c.Photos.Bucket == "" {
		return errors.New("PHOTO_BUCKET must not be empty")
	}

	switch c.Backend {
	case BackendDynamoDB:
		if c.DynamoDB.RepairsTable == "" || c.DynamoDB.StockTable == "" {
			return errors.New("REPAIRS_TABLE and STOCK_TABLE must not be empty")
		}
		if c.Photos.PublicBaseURL == "" {
			c.Photos.PublicBaseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", c.Photos.Bucket, c.DynamoDB.Region)
		}
	case BackendSupabase:
		if c.Supabase.URL == "" {
			return errors.New("SUPABASE_URL must be provided")
		}
		if c.Supabase.APIKey == "" {
			return errors.New("SUPABASE_KEY must be provided")
		}
	default:
		return fmt.Errorf("BACKEND must be %q or %q, got %q", BackendDynamoDB, BackendSupabase, c.Backend)
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
