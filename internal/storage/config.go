package storage

import "os"

// MediaConfig holds object-storage connection configuration.
type MediaConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

// LoadMediaConfig loads media-storage config from environment.
func LoadMediaConfig() *MediaConfig {
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"
	return &MediaConfig{
		Endpoint:  os.Getenv("MINIO_ENDPOINT"),
		AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		SecretKey: os.Getenv("MINIO_SECRET_KEY"),
		UseSSL:    useSSL,
		Bucket:    getEnv("MINIO_BUCKET", "leadcore-media"),
	}
}

func getEnv(k, d string) string {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	return v
}
