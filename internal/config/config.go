package config

import (
	"flag"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Default values for configuration
const (
	DefaultWidth        = 800.0
	DefaultHeight       = 600.0
	DefaultBallSize     = 50.0
	DefaultPaddleWidth  = 25.0
	DefaultPaddleHeight = 200.0
	DefaultTickRate     = 60
	DefaultLogLevel     = "info"
	MaxTickRate         = 1000
)

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Config holds the application configuration
type Config struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BallSize     float64 `yaml:"ball_size"`
	PaddleWidth  float64 `yaml:"paddle_width"`
	PaddleHeight float64 `yaml:"paddle_height"`
	TickRate     int     `yaml:"tick_rate"`
	Seed         int64   `yaml:"seed"`
	Headless     bool    `yaml:"headless"`
	Frames       int     `yaml:"frames"`
	TracePath    string  `yaml:"trace"`
	LogLevel     string  `yaml:"log_level"`
	LogFile      string  `yaml:"log_file"`
	Mute         bool    `yaml:"mute"`
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	return &Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		BallSize:     DefaultBallSize,
		PaddleWidth:  DefaultPaddleWidth,
		PaddleHeight: DefaultPaddleHeight,
		TickRate:     DefaultTickRate,
		LogLevel:     DefaultLogLevel,
	}
}

// ParseArgs parses command line arguments and returns a Config.
// Values come from the defaults, then the --config file if given, then any
// flag set explicitly on the command line.
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("touchpong", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	def := Default()
	configPath := fs.String("config", "", "YAML configuration file")
	width := fs.Float64("width", def.Width, "arena width")
	height := fs.Float64("height", def.Height, "arena height")
	ballSize := fs.Float64("ball-size", def.BallSize, "ball width and height")
	paddleWidth := fs.Float64("paddle-width", def.PaddleWidth, "paddle width")
	paddleHeight := fs.Float64("paddle-height", def.PaddleHeight, "paddle height")
	tickRate := fs.Int("tick-rate", def.TickRate, "updates per second (1-1000)")
	seed := fs.Int64("seed", 0, "serve random seed (0 = random)")
	headless := fs.Bool("headless", false, "run without a terminal")
	frames := fs.Int("frames", 0, "stop after this many updates (0 = run until quit)")
	trace := fs.String("trace", "", "write a frame trace to this file")
	logLevel := fs.String("log-level", def.LogLevel, "debug, info, warn or error")
	logFile := fs.String("log-file", "", "log destination")
	mute := fs.Bool("mute", false, "disable sound")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, errors.Errorf("unexpected argument %q", fs.Arg(0))
	}

	cfg := def
	if *configPath != "" {
		loaded, err := LoadFile(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	// Explicit flags win over the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "ball-size":
			cfg.BallSize = *ballSize
		case "paddle-width":
			cfg.PaddleWidth = *paddleWidth
		case "paddle-height":
			cfg.PaddleHeight = *paddleHeight
		case "tick-rate":
			cfg.TickRate = *tickRate
		case "seed":
			cfg.Seed = *seed
		case "headless":
			cfg.Headless = *headless
		case "frames":
			cfg.Frames = *frames
		case "trace":
			cfg.TracePath = *trace
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-file":
			cfg.LogFile = *logFile
		case "mute":
			cfg.Mute = *mute
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads a YAML configuration file on top of the defaults
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open config")
	}
	defer f.Close()

	cfg, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", path)
	}
	return cfg, nil
}

// Load decodes YAML from r on top of the defaults. Unknown keys are rejected.
func Load(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "invalid yaml")
	}
	return cfg, nil
}

// Validate checks that the arena and its pieces make a playable game
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("arena must be positive, got %gx%g", c.Width, c.Height)
	}
	if c.BallSize <= 0 {
		return errors.Errorf("ball size must be positive, got %g", c.BallSize)
	}
	// A serve puts the ball's corner at the centre, so it must fit in the
	// lower-right quarter
	if 2*c.BallSize >= c.Width || 2*c.BallSize >= c.Height {
		return errors.Errorf("ball size %g must be under half of the %gx%g arena", c.BallSize, c.Width, c.Height)
	}
	if c.PaddleWidth <= 0 || c.PaddleHeight <= 0 {
		return errors.Errorf("paddle must be positive, got %gx%g", c.PaddleWidth, c.PaddleHeight)
	}
	// Each paddle has to stay inside the outer quarter its pointer band covers
	if c.PaddleWidth > c.Width/4 || c.PaddleHeight > c.Height {
		return errors.Errorf("paddle %gx%g does not fit a %gx%g arena", c.PaddleWidth, c.PaddleHeight, c.Width, c.Height)
	}
	if c.TickRate < 1 || c.TickRate > MaxTickRate {
		return errors.Errorf("tick rate must be between 1 and %d, got %d", MaxTickRate, c.TickRate)
	}
	if c.Frames < 0 {
		return errors.Errorf("frames must not be negative, got %d", c.Frames)
	}
	if c.Headless && c.Frames == 0 {
		return errors.New("headless mode needs --frames")
	}
	if !logLevels[c.LogLevel] {
		return errors.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}
