package fontscan

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/bingo/text"
)

// EnvFontPath is the environment variable naming an explicit font file.
// When set it takes absolute precedence over host discovery.
const EnvFontPath = "BINGO_FONT_PATH"

// ErrFontNotFound is returned when no parseable font could be located
// via the override or discovery. It is fatal to a render: retrying a
// filesystem scan with the same environment will not change the outcome.
var ErrFontNotFound = errors.New("fontscan: no usable font found")

// Provider locates the font used for a render.
// Implementations must return a parsed FontSource or an error wrapping
// ErrFontNotFound; they are invoked once per render and the result is
// shared read-only across all cells.
type Provider interface {
	Locate() (*text.FontSource, error)
}

// Option configures Default.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger sets the logger used by the discovery provider.
// The default is silent.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// Default returns the standard provider chain: the EnvFontPath override
// when set (success or failure, discovery is never attempted as a
// fallback), host discovery otherwise.
func Default(opts ...Option) Provider {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if path := os.Getenv(EnvFontPath); path != "" {
		return ExplicitPath{Path: path}
	}
	return HostDiscovery{Logger: cfg.logger}
}

// ExplicitPath is a Provider that loads exactly one font file.
// Any failure, unreadable file or unparseable data alike, is terminal; it
// never falls back to discovery.
type ExplicitPath struct {
	// Path is the font file to load.
	Path string
}

// Locate implements Provider.
func (p ExplicitPath) Locate() (*text.FontSource, error) {
	src, err := text.NewFontSourceFromFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: explicit path %q: %v", ErrFontNotFound, p.Path, err)
	}
	return src, nil
}
