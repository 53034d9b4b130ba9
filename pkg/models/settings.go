package models

import "time"

// Settings represents the application configuration
type Settings struct {
	UI      UISettings      `yaml:"ui"`
	Storage StorageSettings `yaml:"storage"`
	Auth    AuthSettings    `yaml:"auth"`
}

// UISettings controls table presentation defaults
type UISettings struct {
	DefaultPageSize int   `yaml:"default_page_size"`
	PageSizeOptions []int `yaml:"page_size_options"`
}

// StorageSettings selects and configures the image bucket backend
type StorageSettings struct {
	Backend string     `yaml:"backend"` // "local" or "s3"
	Bucket  string     `yaml:"bucket"`
	S3      S3Settings `yaml:"s3"`
}

// S3Settings holds the S3 backend configuration
type S3Settings struct {
	Region        string `yaml:"region"`
	PublicBaseURL string `yaml:"public_base_url"`
}

// AuthSettings controls session behavior
type AuthSettings struct {
	SessionTTLHours int `yaml:"session_ttl_hours"`
}

// SessionTTL converts the configured hours into a duration; zero means
// the auth service default applies.
func (a AuthSettings) SessionTTL() time.Duration {
	return time.Duration(a.SessionTTLHours) * time.Hour
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		UI: UISettings{
			DefaultPageSize: 10,
			PageSizeOptions: []int{5, 10, 20, 50},
		},
		Storage: StorageSettings{
			Backend: "local",
			Bucket:  "product_images",
		},
		Auth: AuthSettings{
			SessionTTLHours: 24,
		},
	}
}
