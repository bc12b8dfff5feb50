package config

import "os"

// StorageConfig selects where downloaded venue photos live: a directory under
// MEDIA_ROOT (the default) or an S3-compatible R2 bucket.
type StorageConfig struct {
	Backend         string // "local" or "r2"
	MediaRoot       string
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	PublicURL       string
	Region          string
}

func NewStorageConfig() *StorageConfig {
	cfg := &StorageConfig{
		Backend:         os.Getenv("MEDIA_BACKEND"),
		MediaRoot:       os.Getenv("MEDIA_ROOT"),
		AccountID:       os.Getenv("CLOUDFLARE_ACCOUNT_ID"),
		AccessKeyID:     os.Getenv("CLOUDFLARE_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("CLOUDFLARE_SECRET_ACCESS_KEY"),
		BucketName:      os.Getenv("CLOUDFLARE_BUCKET_NAME"),
		PublicURL:       os.Getenv("CLOUDFLARE_PUBLIC_URL"),
		Region:          "auto",
	}
	if cfg.Backend == "" {
		cfg.Backend = "local"
	}
	if cfg.MediaRoot == "" {
		cfg.MediaRoot = "./media"
	}
	return cfg
}
