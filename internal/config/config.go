package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/olivierh59500/arc-bounce-go/internal/arc"
	"github.com/olivierh59500/arc-bounce-go/internal/bodies"
)

// FileName is the optional config file looked up in each search path.
const FileName = "arcbounce.cfg.json"

// EnvPrefix prefixes environment overrides, e.g. ARCBOUNCE_ARC_SPEEDPOLICY.
const EnvPrefix = "ARCBOUNCE"

// Speed policies
const (
	PolicyFixed    = "fixed"
	PolicyDistance = "distance"
)

var ErrInvalid = errors.New("invalid config")

type WindowConfig struct {
	Width  int    `json:"width" mapstructure:"width"`
	Height int    `json:"height" mapstructure:"height"`
	Title  string `json:"title" mapstructure:"title"`
	TPS    int    `json:"tps" mapstructure:"tps"`
}

type ArcConfig struct {
	HorizontalMargin float64       `json:"horizontalMargin" mapstructure:"horizontalMargin"`
	AngleDegrees     float64       `json:"angleDegrees" mapstructure:"angleDegrees"`
	StartAnchor      string        `json:"startAnchor" mapstructure:"startAnchor"`
	SpeedPolicy      string        `json:"speedPolicy" mapstructure:"speedPolicy"`
	Duration         time.Duration `json:"duration" mapstructure:"duration"`
	PixelsPerSecond  float64       `json:"pixelsPerSecond" mapstructure:"pixelsPerSecond"`
}

type BodiesConfig struct {
	MinBodies    int     `json:"minBodies" mapstructure:"minBodies"`
	AreaDivisor  float64 `json:"areaDivisor" mapstructure:"areaDivisor"`
	MaxSpeed     float64 `json:"maxSpeed" mapstructure:"maxSpeed"`
	MinRadius    float64 `json:"minRadius" mapstructure:"minRadius"`
	MaxRadius    float64 `json:"maxRadius" mapstructure:"maxRadius"`
	CanvasWidth  float64 `json:"canvasWidth" mapstructure:"canvasWidth"`
	CanvasHeight float64 `json:"canvasHeight" mapstructure:"canvasHeight"`
	Seed         int64   `json:"seed" mapstructure:"seed"`
}

// Config is the full program configuration.
type Config struct {
	LogLevel  string       `json:"logLevel" mapstructure:"logLevel"`
	LogFormat string       `json:"logFormat" mapstructure:"logFormat"`
	Window    WindowConfig `json:"window" mapstructure:"window"`
	Arc       ArcConfig    `json:"arc" mapstructure:"arc"`
	Bodies    BodiesConfig `json:"bodies" mapstructure:"bodies"`
}

// SetDefaults registers every key with its default value.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFormat", "console")

	v.SetDefault("window.width", 1024)
	v.SetDefault("window.height", 768)
	v.SetDefault("window.title", "Arc & Bounce")
	v.SetDefault("window.tps", 60)

	v.SetDefault("arc.horizontalMargin", arc.DefaultHorizontalMargin)
	v.SetDefault("arc.angleDegrees", arc.DefaultAngleDegrees)
	v.SetDefault("arc.startAnchor", arc.Start.String())
	v.SetDefault("arc.speedPolicy", PolicyFixed)
	v.SetDefault("arc.duration", arc.DefaultDuration.String())
	v.SetDefault("arc.pixelsPerSecond", arc.DefaultPixelsPerSecond)

	d := bodies.DefaultConfig()
	v.SetDefault("bodies.minBodies", d.MinBodies)
	v.SetDefault("bodies.areaDivisor", d.AreaDivisor)
	v.SetDefault("bodies.maxSpeed", d.MaxSpeed)
	v.SetDefault("bodies.minRadius", d.MinRadius)
	v.SetDefault("bodies.maxRadius", d.MaxRadius)
	v.SetDefault("bodies.canvasWidth", bodies.DefaultCanvasWidth)
	v.SetDefault("bodies.canvasHeight", bodies.DefaultCanvasHeight)
	v.SetDefault("bodies.seed", 0)
}

// Load reads configuration from defaults, an optional JSON file in any of
// configDirs, and ARCBOUNCE_* environment variables, in increasing priority.
func Load(v *viper.Viper, configDirs ...string) (Config, error) {
	SetDefaults(v)

	v.SetConfigName(FileName)
	v.SetConfigType("json")
	for _, dir := range configDirs {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if len(configDirs) > 0 {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the kernels cannot work with.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d", c.Window.Width, c.Window.Height)
	check(c.Window.TPS > 0, "window.tps %d", c.Window.TPS)

	if err := c.ArcParams().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
	}
	if _, err := arc.ParseAnchor(c.Arc.StartAnchor); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
	}
	switch strings.ToLower(c.Arc.SpeedPolicy) {
	case PolicyFixed:
		check(c.Arc.Duration > 0, "arc.duration %s", c.Arc.Duration)
	case PolicyDistance:
		check(c.Arc.PixelsPerSecond > 0, "arc.pixelsPerSecond %v", c.Arc.PixelsPerSecond)
	default:
		check(false, "arc.speedPolicy %q", c.Arc.SpeedPolicy)
	}

	b := c.Bodies
	check(b.MinBodies >= 0, "bodies.minBodies %d", b.MinBodies)
	check(b.AreaDivisor > 0, "bodies.areaDivisor %v", b.AreaDivisor)
	check(b.MaxSpeed >= 0, "bodies.maxSpeed %v", b.MaxSpeed)
	check(b.MinRadius > 0 && b.MinRadius <= b.MaxRadius, "bodies radius range [%v, %v]", b.MinRadius, b.MaxRadius)
	check(b.CanvasWidth > 0 && b.CanvasWidth <= 1, "bodies.canvasWidth %v", b.CanvasWidth)
	check(b.CanvasHeight > 0 && b.CanvasHeight <= 1, "bodies.canvasHeight %v", b.CanvasHeight)

	return errors.Join(errs...)
}

// ArcParams returns the arc layout inputs.
func (c Config) ArcParams() arc.Params {
	return arc.Params{
		HorizontalMargin: c.Arc.HorizontalMargin,
		AngleDegrees:     c.Arc.AngleDegrees,
	}
}

// StartAnchor returns the anchor the marker rests at on startup. Validate
// rejects unknown names; an invalid value falls back to Start.
func (c Config) StartAnchor() arc.Anchor {
	a, err := arc.ParseAnchor(c.Arc.StartAnchor)
	if err != nil {
		return arc.Start
	}
	return a
}

// SpeedPolicy returns the configured marker speed policy.
func (c Config) SpeedPolicy() arc.SpeedPolicy {
	if strings.EqualFold(c.Arc.SpeedPolicy, PolicyDistance) {
		return arc.ConstantSpeed(c.Arc.PixelsPerSecond)
	}
	return arc.FixedDuration(c.Arc.Duration)
}

// BodyConfig returns the body generation settings.
func (c Config) BodyConfig() bodies.Config {
	return bodies.Config{
		MinBodies:   c.Bodies.MinBodies,
		AreaDivisor: c.Bodies.AreaDivisor,
		MaxSpeed:    c.Bodies.MaxSpeed,
		MinRadius:   c.Bodies.MinRadius,
		MaxRadius:   c.Bodies.MaxRadius,
	}
}
