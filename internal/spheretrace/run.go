package spheretrace

import (
	"time"
)

// Run loads the config at cfgPath, renders, and writes the selected outputs.
func Run(cfgPath string) (*Config, []Real, error) {
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return nil, nil, err
	}
	buf, err := RunConfig(cfg)
	return cfg, buf, err
}

// RunConfig renders cfg.Width×cfg.Height and writes the outputs selected by the
// PNG, PNG16, GIF and RAW flags. With no flag set it writes the 8-bit PNG.
func RunConfig(cfg *Config) ([]Real, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	resetRayLog()

	start := time.Now()
	buf, err := Trace(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	DebugLog("Rendered %dx%d (%d floats), time: %s", cfg.Width, cfg.Height, len(buf), time.Since(start))

	if Debug {
		raysStats()
	}

	png16 := PNG16 || cfg.PNG16
	png8 := PNG || (!png16 && !GIF && !RAW)
	if png8 && !png16 {
		if err := SavePNG(cfg.PNGOut, buf, cfg.Width, cfg.Height, cfg.Gamma, cfg.Normalize); err != nil {
			return nil, err
		}
	}
	if png16 {
		if err := SavePNG16(cfg.PNGOut, buf, cfg.Width, cfg.Height, cfg.Gamma, cfg.Normalize); err != nil {
			return nil, err
		}
	}
	if GIF {
		if err := SaveGIF(cfg.GIFOut, buf, cfg.Width, cfg.Height, cfg.Gamma, cfg.Normalize); err != nil {
			return nil, err
		}
	}
	if RAW {
		if err := SaveRawRGBA32(cfg.RAWOut, buf, cfg.Width, cfg.Height); err != nil {
			return nil, err
		}
	}
	return buf, nil
}
