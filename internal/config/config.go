package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"schedgrid/internal/grid"
)

// Config is the runtime configuration of the CLI: which timezone to render
// in and the shape of the visible day grid. Values come from the
// environment, optionally seeded from a .env file.
type Config struct {
	Environment string
	Timezone    string
	Window      grid.Window
	Density     grid.Density
	DensityName string
}

// Load reads configuration from the environment. A missing .env file is not
// an error; explicit environment variables win either way.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		Environment: getenv("SCHEDGRID_ENV", "development"),
		Timezone:    getenv("SCHEDGRID_TZ", "UTC"),
		DensityName: getenv("SCHEDGRID_DENSITY", "desktop"),
	}

	startHour, err := getint("SCHEDGRID_DAY_START", 8)
	if err != nil {
		return nil, err
	}
	endHour, err := getint("SCHEDGRID_DAY_END", 20)
	if err != nil {
		return nil, err
	}
	slotMinutes, err := getint("SCHEDGRID_SLOT_MINUTES", 30)
	if err != nil {
		return nil, err
	}

	var werr error
	cfg.Window, werr = grid.NewWindow(startHour, endHour, slotMinutes)
	if werr != nil {
		return nil, fmt.Errorf("grid window %d-%d/%dm: %w", startHour, endHour, slotMinutes, werr)
	}

	switch cfg.DensityName {
	case "desktop":
		cfg.Density = grid.DensityDesktop
	case "mobile":
		cfg.Density = grid.DensityMobile
	default:
		return nil, fmt.Errorf("unknown density %q (want desktop or mobile)", cfg.DensityName)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
