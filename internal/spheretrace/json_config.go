package spheretrace

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config selects the image size and where/how the host writes it.
// The scene itself is fixed and not configurable.
type Config struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	PNGOut    string `json:"pngOut,omitempty"`
	GIFOut    string `json:"gifOut,omitempty"`
	RAWOut    string `json:"rawOut,omitempty"`
	Gamma     Real   `json:"gamma,omitempty"`
	Normalize bool   `json:"normalize,omitempty"` // scale by the brightest channel before clamping
	PNG16     bool   `json:"png16,omitempty"`
	ViewScale int    `json:"viewScale,omitempty"`
}

// DefaultConfig returns a config with every field at its default.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.Width == 0 {
		cfg.Width = Width
	}
	if cfg.Height == 0 {
		cfg.Height = Height
	}
	if cfg.PNGOut == "" {
		cfg.PNGOut = PNGOut
	}
	if cfg.GIFOut == "" {
		cfg.GIFOut = GIFOut
	}
	if cfg.RAWOut == "" {
		cfg.RAWOut = RAWOut
	}
	if cfg.Gamma <= 0 {
		cfg.Gamma = Gamma
	}
	if cfg.ViewScale <= 0 {
		cfg.ViewScale = ViewScale
	}
}

// Validate checks the size can be rendered.
func (cfg *Config) Validate() error {
	if _, err := BufferLen(cfg.Width, cfg.Height); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// LoadConfig reads a JSON config, fills defaults and validates it.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	DebugLog("Loaded config from %s: size=(%d, %d), gamma=%f, normalize=%v", path, cfg.Width, cfg.Height, cfg.Gamma, cfg.Normalize)
	return &cfg, nil
}
