package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/raster"
)

// config holds the command line settings after env and flag layering
type config struct {
	Output string
	Width  int
	Height int
	Format string
	Demo   bool
	Help   bool
}

// loadConfig reads RAYTRACER_* environment defaults, then lets flags override them
func loadConfig(args []string) (config, error) {
	cfg := config{
		Output: "output/render.png",
		Width:  raster.DefaultWidth,
		Height: raster.DefaultHeight,
		Demo:   true,
	}

	if v := os.Getenv("RAYTRACER_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("RAYTRACER_FORMAT"); v != "" {
		cfg.Format = v
	}
	for name, dst := range map[string]*int{"RAYTRACER_WIDTH": &cfg.Width, "RAYTRACER_HEIGHT": &cfg.Height} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", name, v, err)
		}
		*dst = n
	}

	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Output, "output", cfg.Output, "Output image path")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Image width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Image height in pixels")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "Image format: png, bmp or tiff (default: from output extension)")
	fs.BoolVar(&cfg.Demo, "demo", cfg.Demo, "Print vector arithmetic demo")
	fs.BoolVar(&cfg.Help, "help", false, "Show help information")
	if err := fs.Parse(args); err != nil {
		// -h is not registered but still asks for help
		if errors.Is(err, flag.ErrHelp) {
			cfg.Help = true
			return cfg, nil
		}
		return cfg, err
	}

	return cfg, nil
}

// printDemo shows the vector operations on two sample vectors
func printDemo(w io.Writer) {
	a := core.Vec3H{X: 2, Y: 2, Z: 2, W: 2}
	b := core.Vec3H{X: 1, Y: 1, Z: 1, W: 1}

	fmt.Fprintf(w, "%v dot %v = %v\n", a, b, a.Dot(b))
	fmt.Fprintf(w, "%v + %v = %v\n", a, b, a.Add(b))
	fmt.Fprintf(w, "%v - %v = %v\n", a, b, a.Subtract(b))
	fmt.Fprintf(w, "%v cross %v = %v\n", a, b, a.Cross(b))
}

// run writes a blank frame of the configured size
func run(cfg config, stdout io.Writer) error {
	format := raster.FormatFromPath(cfg.Output)
	if cfg.Format != "" {
		f, err := raster.ParseFormat(cfg.Format)
		if err != nil {
			return err
		}
		format = f
	}

	if cfg.Demo {
		printDemo(stdout)
	}

	buf, err := raster.New(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	if err := raster.WriteFile(cfg.Output, buf, raster.Options{Format: format}); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Image saved as %s (%dx%d %v)\n", cfg.Output, cfg.Width, cfg.Height, format)
	return nil
}

func printHelp() {
	fmt.Println("Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -output string   Output image path (default output/render.png)")
	fmt.Println("  -width int       Image width in pixels (default 400)")
	fmt.Println("  -height int      Image height in pixels (default 400)")
	fmt.Println("  -format string   png, bmp or tiff (default: from output extension)")
	fmt.Println("  -demo            Print vector arithmetic demo (default true)")
	fmt.Println()
	fmt.Println("Environment (also read from .env):")
	fmt.Println("  RAYTRACER_OUTPUT, RAYTRACER_WIDTH, RAYTRACER_HEIGHT, RAYTRACER_FORMAT")
}

// loadEnvFile exports the variables from a dotenv file. A missing file is not an error.
func loadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func main() {
	if err := loadEnvFile(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printHelp()
		os.Exit(2)
	}

	if cfg.Help {
		printHelp()
		return
	}

	if err := run(cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
