package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/zhubert/launchpad/internal/errors"
)

// Defaults used when a field is absent from the config file.
const (
	DefaultRows                  = 3
	DefaultCols                  = 5
	DefaultScrollStep            = 6
	DefaultJumpStep              = 24
	DefaultLaunchThresholdFrames = 30
	DefaultFrameIntervalMS       = 16
	DefaultCellWidth             = 14
	DefaultCellHeight            = 5
)

// Bounds accepted by Validate.
const (
	MaxRows = 12
	MaxCols = 16
)

// Config holds the application configuration
type Config struct {
	Rows                  int    `json:"rows,omitempty"`
	Cols                  int    `json:"cols,omitempty"`
	ScrollStep            int    `json:"scroll_step,omitempty"`             // Columns per frame when paging
	JumpStep              int    `json:"jump_step,omitempty"`               // Columns per frame for direct jumps
	LaunchThresholdFrames int    `json:"launch_threshold_frames,omitempty"` // Double-activation window
	FrameIntervalMS       int    `json:"frame_interval_ms,omitempty"`
	CellWidth             int    `json:"cell_width,omitempty"`
	CellHeight            int    `json:"cell_height,omitempty"`
	Theme                 string `json:"theme,omitempty"`        // UI theme name (e.g., "dark-purple", "nord")
	CatalogPath           string `json:"catalog_path,omitempty"` // Manifest file or directory to scan

	NotificationsEnabled bool `json:"notifications_enabled,omitempty"` // Desktop notification on launch
	ConfirmLaunch        bool `json:"confirm_launch,omitempty"`        // Ask before launching

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".launchpad"), nil
}

// DefaultPath returns the path to the config file
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// DefaultCatalogPath returns the catalog used when neither the config nor
// the command line names one
func DefaultCatalogPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "catalog.json"), nil
}

// Load reads the config from the default location, or returns defaults if
// it doesn't exist.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, errors.ConfigLoadFailed("~/.launchpad/config.json", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path, or returns defaults if it doesn't exist.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{filePath: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg.ensureInitialized()
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	// Must happen before Validate() since Validate() only reads
	cfg.ensureInitialized()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns a config with every field at its default that is not
// backed by a file. Save writes it to DefaultPath.
func Default() *Config {
	cfg := &Config{}
	cfg.ensureInitialized()
	return cfg
}

// ensureInitialized fills every zero field with its default.
//
// Thread-safety: This method is NOT thread-safe and must only be called
// during single-threaded initialization (i.e., from LoadFrom() before the
// Config is shared across goroutines).
func (c *Config) ensureInitialized() {
	if c.Rows == 0 {
		c.Rows = DefaultRows
	}
	if c.Cols == 0 {
		c.Cols = DefaultCols
	}
	if c.ScrollStep == 0 {
		c.ScrollStep = DefaultScrollStep
	}
	if c.JumpStep == 0 {
		c.JumpStep = DefaultJumpStep
	}
	if c.LaunchThresholdFrames == 0 {
		c.LaunchThresholdFrames = DefaultLaunchThresholdFrames
	}
	if c.FrameIntervalMS == 0 {
		c.FrameIntervalMS = DefaultFrameIntervalMS
	}
	if c.CellWidth == 0 {
		c.CellWidth = DefaultCellWidth
	}
	if c.CellHeight == 0 {
		c.CellHeight = DefaultCellHeight
	}
}

// Validate checks that the config is internally consistent.
// This is a read-only operation - call ensureInitialized() first if needed.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.Rows < 1 || c.Rows > MaxRows {
		return errors.ConfigInvalid(fmt.Sprintf("rows must be between 1 and %d, got %d", MaxRows, c.Rows))
	}
	if c.Cols < 1 || c.Cols > MaxCols {
		return errors.ConfigInvalid(fmt.Sprintf("cols must be between 1 and %d, got %d", MaxCols, c.Cols))
	}
	if c.ScrollStep < 1 {
		return errors.ConfigInvalid(fmt.Sprintf("scroll_step must be positive, got %d", c.ScrollStep))
	}
	if c.JumpStep < 1 {
		return errors.ConfigInvalid(fmt.Sprintf("jump_step must be positive, got %d", c.JumpStep))
	}
	if c.LaunchThresholdFrames < 1 {
		return errors.ConfigInvalid(fmt.Sprintf("launch_threshold_frames must be positive, got %d", c.LaunchThresholdFrames))
	}
	if c.FrameIntervalMS < 1 || c.FrameIntervalMS > 1000 {
		return errors.ConfigInvalid(fmt.Sprintf("frame_interval_ms must be between 1 and 1000, got %d", c.FrameIntervalMS))
	}
	if c.CellWidth < 4 {
		return errors.ConfigInvalid(fmt.Sprintf("cell_width must be at least 4, got %d", c.CellWidth))
	}
	if c.CellHeight < 3 {
		return errors.ConfigInvalid(fmt.Sprintf("cell_height must be at least 3, got %d", c.CellHeight))
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	path := c.filePath
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return errors.ConfigSaveFailed("~/.launchpad/config.json", err)
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.ConfigSaveFailed(path, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(path, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.ConfigSaveFailed(path, err)
	}
	return nil
}

// Path returns the file the config was loaded from
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// GetGrid returns the configured rows and cols
func (c *Config) GetGrid() (rows, cols int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Rows, c.Cols
}

// SetGrid overrides the rows and cols for the session
func (c *Config) SetGrid(rows, cols int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if rows > 0 {
		c.Rows = rows
	}
	if cols > 0 {
		c.Cols = cols
	}
}

// GetScrollSteps returns the paging and jump animation steps
func (c *Config) GetScrollSteps() (scroll, jump int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ScrollStep, c.JumpStep
}

// GetLaunchThreshold returns the double-activation window in frames
func (c *Config) GetLaunchThreshold() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.LaunchThresholdFrames
}

// GetFrameInterval returns the delay between animation frames
func (c *Config) GetFrameInterval() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Duration(c.FrameIntervalMS) * time.Millisecond
}

// GetCellSize returns the cell width and height in terminal cells
func (c *Config) GetCellSize() (width, height int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.CellWidth, c.CellHeight
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetCatalogPath returns the catalog manifest or directory
func (c *Config) GetCatalogPath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.CatalogPath
}

// SetCatalogPath sets the catalog manifest or directory
func (c *Config) SetCatalogPath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.CatalogPath = path
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// GetConfirmLaunch returns whether launches need confirmation
func (c *Config) GetConfirmLaunch() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ConfirmLaunch
}

// SetConfirmLaunch sets whether launches need confirmation
func (c *Config) SetConfirmLaunch(confirm bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ConfirmLaunch = confirm
}
