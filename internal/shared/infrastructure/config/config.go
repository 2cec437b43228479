package config

import (
	"os"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Upload  UploadConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string
	AllowedOrigins string
}

// UploadConfig holds the shared secret gating the upload endpoint. The
// key is never embedded in source; deployments must provide SCRIPT_KEY.
type UploadConfig struct {
	ScriptKey string
}

// StorageConfig holds storage configuration. FolderID addresses the one
// folder both handlers operate on, whatever the driver.
type StorageConfig struct {
	Driver   string // local, s3 or drive
	FolderID string

	S3Region     string
	S3Endpoint   string
	S3AccessKey  string
	S3SecretKey  string
	S3BucketName string
	S3UseSSL     bool

	GoogleCredentialsFile string

	LocalPath string
}

// Load reads configuration from environment variables
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		},
		Storage: StorageConfig{
			Driver:                getEnv("STORAGE_DRIVER", "local"),
			FolderID:              getEnv("FOLDER_ID", "html-drop"),
			S3Region:              getEnv("S3_REGION", "us-east-1"),
			S3Endpoint:            getEnv("S3_ENDPOINT", ""),
			S3AccessKey:           getEnv("S3_ACCESS_KEY", ""),
			S3SecretKey:           getEnv("S3_SECRET_KEY", ""),
			S3BucketName:          getEnv("S3_BUCKET", ""),
			S3UseSSL:              getEnv("S3_USE_SSL", "true") == "true",
			GoogleCredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", ""),
			LocalPath:             getEnv("LOCAL_STORAGE_PATH", "./uploads"),
		},
		Upload: UploadConfig{
			ScriptKey: getEnv("SCRIPT_KEY", "default-dev-key"),
		},
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
