package app

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rook-computer/badger/internal/render"
)

const (
	EnvBadgePath   = "BADGER_BADGE_PATH"
	EnvBackground  = "BADGER_BACKGROUND"
	EnvOutput      = "BADGER_OUTPUT"
	EnvPNGPath     = "BADGER_PNG_PATH"
	EnvSPIPort     = "BADGER_SPI_PORT"
	EnvFramebuffer = "BADGER_FB_DEVICE"
	EnvShowQR      = "BADGER_QR"
	EnvStdioLog    = "BADGER_STDIO_LOG"
)

const (
	DefaultBadgePath       = "/badges/badge.txt"
	DefaultBackgroundPath  = "/badges/back.jpg"
	DefaultFramebufferPath = "/dev/fb0"
	DefaultPNGPath         = "badge.png"

	// LEDLevel is the activity LED brightness while the badge is shown.
	LEDLevel = 128
)

// Config contains settings for a badge run.
//
// The intended output differs per binary:
// - real device: fb (or epd for the SPI e-paper HAT)
// - simulator:   png
type Config struct {
	BadgePath      string
	BackgroundPath string
	Presenter      render.PresenterConfig
	ShowQR         bool
	StdioLog       string

	// RenderOnly returns from Start after the frame is presented instead of
	// entering the power-saving idle loop.
	RenderOnly bool
}

func DefaultConfigFromEnv(defaultOutput string) (Config, error) {
	cfg := Config{
		BadgePath:      envOr(EnvBadgePath, DefaultBadgePath),
		BackgroundPath: envOr(EnvBackground, DefaultBackgroundPath),
		Presenter: render.PresenterConfig{
			Output:          envOr(EnvOutput, defaultOutput),
			FramebufferPath: envOr(EnvFramebuffer, DefaultFramebufferPath),
			SPIPort:         os.Getenv(EnvSPIPort),
			PNGPath:         envOr(EnvPNGPath, DefaultPNGPath),
		},
		StdioLog: os.Getenv(EnvStdioLog),
	}

	if raw := os.Getenv(EnvShowQR); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvShowQR, raw, err)
		}
		cfg.ShowQR = parsed
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
