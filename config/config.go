package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/tidwall/jsonc"

	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/core/cycletime"
	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/core/metrics"
	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/core/model"
	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/core/report"
	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/core/search"
	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/infra/history"
	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/infra/logger"
)

// EnvPrefix prefixes environment overrides, e.g. YARD_BOUNDS_L__MAX=50.
const EnvPrefix = "YARD_"

// DomainError reports an option that cannot produce a valid grid.
type DomainError = search.DomainError

// ErrDomain matches every DomainError.
var ErrDomain = search.ErrDomain

type Config struct {
	BoundsL            search.Bounds        `json:"bounds_L"`
	BoundsH            search.Bounds        `json:"bounds_H"`
	BoundsW            search.Bounds        `json:"bounds_W"`
	MinStorageCapacity int                  `json:"min_storage_capacity"`
	MaxStackHeight     int                  `json:"max_stack_height"`
	Alphas             []float64            `json:"alphas"`
	UnitDimensions     model.UnitDimensions `json:"unit_dimensions"`
	SpeedTable         model.SpeedTable     `json:"speed_table"`
	HoistingHeight     float64              `json:"hoisting_height"`
	HandlingSeconds    float64              `json:"handling_seconds"`
	LoadingMoves       int                  `json:"loading_moves"`
	LegacyAxisBinding  bool                 `json:"legacy_axis_binding"`
	Workers            int                  `json:"workers"`
	Output             OutputConfig         `json:"output"`
	History            history.Config       `json:"history"`
	Metrics            metrics.Config       `json:"metrics"`
	Log                logger.Config        `json:"log"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// Load reads the configuration from path, which may be empty, then applies
// environment overrides, defaults and validation.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}
	// Optional environment overrides
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	case ".jsonc":
		return jsoncParser{json.Parser()}, nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
}

// jsoncParser strips comments and trailing commas before JSON parsing.
type jsoncParser struct {
	inner *json.JSON
}

func (p jsoncParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	return p.inner.Unmarshal(jsonc.ToJSON(b))
}

func (p jsoncParser) Marshal(o map[string]interface{}) ([]byte, error) {
	return p.inner.Marshal(o)
}

// mixedCaseKeys restores option names that are not lower case.
var mixedCaseKeys = map[string]string{
	"bounds_l":          "bounds_L",
	"bounds_h":          "bounds_H",
	"bounds_w":          "bounds_W",
	"unit_dimensions.l": "unit_dimensions.L",
	"unit_dimensions.h": "unit_dimensions.H",
	"unit_dimensions.w": "unit_dimensions.W",
}

// envValue maps YARD_SPEED_TABLE__GANTRY__EMPTY to speed_table.gantry.empty.
// Comma separated alphas become a list.
func envValue(key, value string) (string, interface{}) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	key = strings.ReplaceAll(key, "__", ".")
	for from, to := range mixedCaseKeys {
		if key == from || strings.HasPrefix(key, from+".") {
			key = to + strings.TrimPrefix(key, from)
			break
		}
	}
	if key == "alphas" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return key, parts
	}
	return key, value
}

// SetDefaults fills every zero option with its default.
func (c *Config) SetDefaults() {
	defaultBounds(&c.BoundsL, search.DefaultGrid.L)
	defaultBounds(&c.BoundsH, search.DefaultGrid.H)
	defaultBounds(&c.BoundsW, search.DefaultGrid.W)
	if c.MinStorageCapacity == 0 {
		c.MinStorageCapacity = report.DefaultMinStorageCapacity
	}
	if c.MaxStackHeight == 0 {
		c.MaxStackHeight = report.DefaultMaxStackHeight
	}
	if len(c.Alphas) == 0 {
		c.Alphas = append([]float64(nil), search.DefaultAlphas...)
	}
	defaultFloat(&c.UnitDimensions.L, model.TEU.L)
	defaultFloat(&c.UnitDimensions.H, model.TEU.H)
	defaultFloat(&c.UnitDimensions.W, model.TEU.W)
	defaultSpeed(&c.SpeedTable.Gantry, model.DefaultSpeeds.Gantry)
	defaultSpeed(&c.SpeedTable.Trolley, model.DefaultSpeeds.Trolley)
	defaultSpeed(&c.SpeedTable.Hoisting, model.DefaultSpeeds.Hoisting)
	if c.HoistingHeight == 0 {
		c.HoistingHeight = cycletime.DefaultHoistingHeight
	}
	if c.HandlingSeconds == 0 {
		c.HandlingSeconds = cycletime.DefaultHandlingSeconds
	}
	if c.LoadingMoves == 0 {
		c.LoadingMoves = cycletime.DefaultLoadingMoves
	}
	c.Output.SetDefaults()
	c.History.SetDefaults()
	c.Log.SetDefaults()
}

// defaultBounds fills min and max separately so a single override such as
// bounds_L.max keeps the default min.
func defaultBounds(b *search.Bounds, def search.Bounds) {
	defaultInt(&b.Min, def.Min)
	defaultInt(&b.Max, def.Max)
}

func defaultInt(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

func defaultFloat(v *float64, def float64) {
	if *v == 0 {
		*v = def
	}
}

func defaultSpeed(s *model.Speed, def model.Speed) {
	defaultFloat(&s.Empty, def.Empty)
	defaultFloat(&s.Loaded, def.Loaded)
}

// Validate returns a DomainError for options that cannot produce a valid
// grid or model.
func (c *Config) Validate() error {
	if err := c.Grid().Validate(); err != nil {
		return err
	}
	if err := search.ValidateAlphas(c.Alphas); err != nil {
		return err
	}
	if err := c.Model().Validate(); err != nil {
		return &DomainError{Field: "model", Reason: err.Error()}
	}
	if c.MinStorageCapacity < 0 {
		return &DomainError{Field: "min_storage_capacity", Reason: "must not be negative"}
	}
	if c.MaxStackHeight < 1 {
		return &DomainError{Field: "max_stack_height", Reason: "must be at least 1"}
	}
	if c.Workers < 0 {
		return &DomainError{Field: "workers", Reason: "must not be negative"}
	}
	return c.Output.Validate()
}

// Grid returns the configured search grid.
func (c *Config) Grid() search.Grid {
	return search.Grid{L: c.BoundsL, H: c.BoundsH, W: c.BoundsW}
}

// Model returns the cycle-time model parameters.
func (c *Config) Model() cycletime.Model {
	return cycletime.Model{
		Unit:            c.UnitDimensions,
		Speeds:          c.SpeedTable,
		HoistingHeight:  c.HoistingHeight,
		HandlingSeconds: c.HandlingSeconds,
		LoadingMoves:    c.LoadingMoves,
	}
}

// Filter returns the reporter thresholds.
func (c *Config) Filter() report.Filter {
	return report.Filter{MinStorageCapacity: c.MinStorageCapacity, MaxStackHeight: c.MaxStackHeight}
}
