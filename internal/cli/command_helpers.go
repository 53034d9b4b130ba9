package cli

import (
	"context"
	"fmt"

	"github.com/vitrin/vitrin-cli/pkg/auth"
	"github.com/vitrin/vitrin-cli/pkg/files"
	"github.com/vitrin/vitrin-cli/pkg/models"
	"github.com/vitrin/vitrin-cli/pkg/storage"
	"github.com/vitrin/vitrin-cli/pkg/store"
)

// CommandContext manages workspace validation and the shared backends a
// command needs. Commands ask for what they use; everything is opened
// lazily and closed by Close.
type CommandContext struct {
	settings *models.Settings
	store    store.Store
	auth     *auth.Service
	bucket   storage.Bucket

	validated bool
}

// NewCommandContext creates a new command context
func NewCommandContext() *CommandContext {
	return &CommandContext{}
}

// ValidateWorkspace ensures the data directory is initialized
func (c *CommandContext) ValidateWorkspace() error {
	if c.validated {
		return nil
	}
	if !files.Exists() {
		return fmt.Errorf("no %s directory found. Run 'vitrin init' first", files.VitrinDir)
	}
	c.validated = true
	return nil
}

// Settings loads the workspace settings; a missing file yields defaults.
func (c *CommandContext) Settings() (*models.Settings, error) {
	if c.settings != nil {
		return c.settings, nil
	}
	settings, err := files.ReadSettings()
	if err != nil {
		return nil, err
	}
	c.settings = settings
	return settings, nil
}

// Store opens the SQLite store.
func (c *CommandContext) Store() (store.Store, error) {
	if c.store != nil {
		return c.store, nil
	}
	if err := c.ValidateWorkspace(); err != nil {
		return nil, err
	}
	s, err := store.OpenSQLite(files.DatabasePath())
	if err != nil {
		return nil, err
	}
	c.store = s
	return s, nil
}

// Auth builds the auth service on top of the store.
func (c *CommandContext) Auth() (*auth.Service, error) {
	if c.auth != nil {
		return c.auth, nil
	}
	s, err := c.Store()
	if err != nil {
		return nil, err
	}
	settings, err := c.Settings()
	if err != nil {
		return nil, err
	}
	secret, err := files.ReadSecret()
	if err != nil {
		return nil, err
	}
	ttl := settings.Auth.SessionTTL()
	c.auth = auth.NewService(s, secret, files.SessionPath(), ttl)
	return c.auth, nil
}

// Bucket builds the image bucket named in settings: the local directory
// bucket by default, S3 when configured.
func (c *CommandContext) Bucket() (storage.Bucket, error) {
	if c.bucket != nil {
		return c.bucket, nil
	}
	settings, err := c.Settings()
	if err != nil {
		return nil, err
	}

	switch settings.Storage.Backend {
	case "s3":
		bucket, err := storage.NewS3Bucket(
			context.Background(),
			settings.Storage.Bucket,
			settings.Storage.S3.Region,
			settings.Storage.S3.PublicBaseURL,
		)
		if err != nil {
			return nil, err
		}
		c.bucket = bucket
	default:
		bucket, err := storage.NewLocalBucket(files.ImagesPath())
		if err != nil {
			return nil, err
		}
		c.bucket = bucket
	}
	return c.bucket, nil
}

// Close releases whatever the context opened.
func (c *CommandContext) Close() error {
	if c.store != nil {
		return c.store.Close()
	}
	return nil
}
