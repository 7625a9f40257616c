package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime/pprof"

	"github.com/lukaszgryglicki/spheretrace/internal/spheretrace"
	"github.com/lukaszgryglicki/spheretrace/internal/view"
)

func main() {
	spheretrace.Debug = os.Getenv("DEBUG") != ""
	spheretrace.PNG = os.Getenv("PNG") != ""
	spheretrace.PNG16 = os.Getenv("PNG16") != ""
	spheretrace.GIF = os.Getenv("GIF") != ""
	spheretrace.RAW = os.Getenv("RAW") != ""
	show := os.Getenv("VIEW") != ""
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	if err := run(show); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(show bool) error {
	cfgPath := "scenes/config.json"
	explicit := len(os.Args) > 1
	if explicit {
		cfgPath = os.Args[1]
	}

	cfg, err := spheretrace.LoadConfig(cfgPath)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		spheretrace.DebugLogOnce("No config at %s, using defaults", cfgPath)
		cfg, err = spheretrace.DefaultConfig(), nil
	}
	if err != nil {
		return err
	}

	buf, err := spheretrace.RunConfig(cfg)
	if err != nil {
		return err
	}
	if !show {
		return nil
	}
	img, err := spheretrace.ToNRGBA(buf, cfg.Width, cfg.Height, cfg.Gamma, cfg.Normalize)
	if err != nil {
		return err
	}
	return view.Show(fmt.Sprintf("spheretrace %dx%d", cfg.Width, cfg.Height), img, cfg.ViewScale)
}
