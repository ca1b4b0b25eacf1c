package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"selectbox/internal/domain"
	"selectbox/internal/eventbus"
)

// DefaultFileName is the config file looked up in the working directory
const DefaultFileName = "selectbox.toml"

var (
	ErrNoControls      = errors.New("no controls defined")
	ErrMissingID       = errors.New("control has no id")
	ErrDuplicateID     = errors.New("duplicate control id")
	ErrUnknownMode     = errors.New("unknown mode")
	ErrBadValue        = errors.New("option value must be a string or a number")
	ErrTooManySelected = errors.New("single control has more than one selected value")
)

// Config represents the application configuration
type Config struct {
	Version    int             `toml:"version"`
	UISettings UISettings      `toml:"ui"`
	Controls   []ControlConfig `toml:"control"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	LogFile        string `toml:"log_file"`
	AutosaveOnExit bool   `toml:"autosave_on_exit"`
	ShowHelp       bool   `toml:"show_help"`
}

// ControlConfig describes one select control
type ControlConfig struct {
	ID       string         `toml:"id"`
	Label    string         `toml:"label"`
	Mode     string         `toml:"mode"`
	Selected []any          `toml:"selected,omitempty"` // option values
	Options  []OptionConfig `toml:"option"`
}

// OptionConfig is one option; Value is a TOML string or number
type OptionConfig struct {
	Label string `toml:"label"`
	Value any    `toml:"value"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service bound to path.
// An empty path means DefaultFileName in the working directory.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultFileName
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to the default
// configuration when the file does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg, err = DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:     cs.filePath,
			Controls: len(cfg.Controls),
		})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads and validates configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(config); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks the control definitions
func (c *Config) Validate() error {
	if len(c.Controls) == 0 {
		return ErrNoControls
	}
	seen := make(map[string]bool, len(c.Controls))
	for i := range c.Controls {
		ctl := &c.Controls[i]
		if ctl.ID == "" {
			return fmt.Errorf("control #%d: %w", i+1, ErrMissingID)
		}
		if seen[ctl.ID] {
			return fmt.Errorf("control %q: %w", ctl.ID, ErrDuplicateID)
		}
		seen[ctl.ID] = true

		mode, err := ctl.DomainMode()
		if err != nil {
			return err
		}
		if _, err := ctl.DomainOptions(); err != nil {
			return err
		}
		if mode == domain.ModeSingle && len(ctl.Selected) > 1 {
			return fmt.Errorf("control %q: %w", ctl.ID, ErrTooManySelected)
		}
	}
	return nil
}

// Control returns the control with the given id
func (c *Config) Control(id string) (*ControlConfig, bool) {
	for i := range c.Controls {
		if c.Controls[i].ID == id {
			return &c.Controls[i], true
		}
	}
	return nil, false
}

// SetSelected records the current selection of a control so it is
// restored on the next start
func (c *Config) SetSelected(id string, selected []domain.Option) {
	ctl, ok := c.Control(id)
	if !ok {
		return
	}
	ctl.Selected = make([]any, 0, len(selected))
	for _, o := range selected {
		ctl.Selected = append(ctl.Selected, o.Value.Interface())
	}
}

// DomainMode parses the control's mode
func (ctl *ControlConfig) DomainMode() (domain.Mode, error) {
	mode, ok := domain.ParseMode(ctl.Mode)
	if !ok {
		return 0, fmt.Errorf("control %q: %w %q", ctl.ID, ErrUnknownMode, ctl.Mode)
	}
	return mode, nil
}

// DomainOptions converts the configured options
func (ctl *ControlConfig) DomainOptions() ([]domain.Option, error) {
	options := make([]domain.Option, 0, len(ctl.Options))
	for i, o := range ctl.Options {
		v, err := toValue(o.Value)
		if err != nil {
			return nil, fmt.Errorf("control %q option #%d: %w", ctl.ID, i+1, err)
		}
		label := o.Label
		if label == "" {
			label = v.String()
		}
		options = append(options, domain.Option{Label: label, Value: v})
	}
	return options, nil
}

// InitialSelection resolves the selected values against the options.
// Values that match no option are skipped.
func (ctl *ControlConfig) InitialSelection() ([]domain.Option, error) {
	options, err := ctl.DomainOptions()
	if err != nil {
		return nil, err
	}

	var selected []domain.Option
	for _, raw := range ctl.Selected {
		v, err := toValue(raw)
		if err != nil {
			return nil, fmt.Errorf("control %q selected value: %w", ctl.ID, err)
		}
		for _, o := range options {
			if o.Value == v {
				selected = append(selected, o)
				break
			}
		}
	}
	return selected, nil
}

func toValue(raw any) (domain.Value, error) {
	switch v := raw.(type) {
	case string:
		return domain.StringValue(v), nil
	case int64:
		return domain.NumberValue(float64(v)), nil
	case int:
		return domain.NumberValue(float64(v)), nil
	case float64:
		return domain.NumberValue(v), nil
	default:
		return domain.Value{}, fmt.Errorf("%w: got %T", ErrBadValue, raw)
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UISettings: UISettings{
			LogFile:        "selectbox.log",
			AutosaveOnExit: true,
			ShowHelp:       true,
		},
		Controls: []ControlConfig{
			{
				ID:    "fruit",
				Label: "Favourite fruit",
				Mode:  "single",
				Options: []OptionConfig{
					{Label: "Apple", Value: "apple"},
					{Label: "Banana", Value: "banana"},
					{Label: "Cherry", Value: "cherry"},
					{Label: "Durian", Value: "durian"},
				},
			},
			{
				ID:    "tags",
				Label: "Tags",
				Mode:  "multiple",
				Options: []OptionConfig{
					{Label: "urgent", Value: "urgent"},
					{Label: "backend", Value: "backend"},
					{Label: "frontend", Value: "frontend"},
					{Label: "docs", Value: "docs"},
				},
			},
			{
				ID:    "priority",
				Label: "Priority",
				Mode:  "single",
				Options: []OptionConfig{
					{Label: "P1", Value: int64(1)},
					{Label: "P2", Value: int64(2)},
					{Label: "P3", Value: int64(3)},
				},
			},
		},
	}
}
