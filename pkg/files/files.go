package files

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vitrin/vitrin-cli/pkg/models"
)

const (
	VitrinDir    = ".vitrin"
	ImagesDir    = "images"
	LogsDir      = "logs"
	DatabaseFile = "store.db"
	SettingsFile = "settings.yaml"
	SecretFile   = "secret"
	SessionFile  = "session.json"
)

func InitProjectStructure() error {
	dirs := []string{
		VitrinDir,
		filepath.Join(VitrinDir, ImagesDir),
		filepath.Join(VitrinDir, LogsDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if _, err := os.Stat(SecretPath()); os.IsNotExist(err) {
		if err := writeSecret(); err != nil {
			return err
		}
	}

	if _, err := os.Stat(SettingsPath()); os.IsNotExist(err) {
		if err := WriteSettings(models.DefaultSettings()); err != nil {
			return err
		}
	}

	return nil
}

// Exists reports whether the current directory has an initialized workspace.
func Exists() bool {
	info, err := os.Stat(VitrinDir)
	return err == nil && info.IsDir()
}

func DatabasePath() string {
	return filepath.Join(VitrinDir, DatabaseFile)
}

func ImagesPath() string {
	return filepath.Join(VitrinDir, ImagesDir)
}

func LogsPath() string {
	return filepath.Join(VitrinDir, LogsDir)
}

func SettingsPath() string {
	return filepath.Join(VitrinDir, SettingsFile)
}

func SecretPath() string {
	return filepath.Join(VitrinDir, SecretFile)
}

func SessionPath() string {
	return filepath.Join(VitrinDir, SessionFile)
}

// ReadSettings loads settings.yaml, falling back to defaults when the file
// is missing so the TUI can run in a freshly initialized workspace.
func ReadSettings() (*models.Settings, error) {
	content, err := os.ReadFile(SettingsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	return settings, nil
}

func WriteSettings(settings *models.Settings) error {
	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	if err := os.WriteFile(SettingsPath(), content, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}

// ReadSecret returns the workspace signing secret created at init time.
func ReadSecret() ([]byte, error) {
	content, err := os.ReadFile(SecretPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read signing secret: %w", err)
	}
	secret, err := hex.DecodeString(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to decode signing secret: %w", err)
	}
	return secret, nil
}

func writeSecret() error {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return fmt.Errorf("failed to generate signing secret: %w", err)
	}
	if err := os.WriteFile(SecretPath(), []byte(hex.EncodeToString(secret)), 0600); err != nil {
		return fmt.Errorf("failed to write signing secret: %w", err)
	}
	return nil
}
