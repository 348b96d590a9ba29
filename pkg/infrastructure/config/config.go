package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/foodops/weekplan/pkg/application/services/scheduling"
	"github.com/foodops/weekplan/pkg/domain/entities"
	"github.com/foodops/weekplan/pkg/infrastructure/repositories/gormstore"
)

// Config is the application configuration loaded from YAML
type Config struct {
	Database gormstore.Config `yaml:"database"`
	Listen   string           `yaml:"listen"`
	Facility Facility         `yaml:"facility"`
}

// ShiftCapacity holds the day/night ceilings for one weekday override
type ShiftCapacity struct {
	Day   int64 `yaml:"day"`
	Night int64 `yaml:"night"`
}

// Facility is the YAML shape of the facility scheduling configuration
type Facility struct {
	DefaultCapacity   int64                    `yaml:"default_capacity"`
	CapacityOverrides map[string]ShiftCapacity `yaml:"capacity_overrides"`
	ExclusiveProducts []string                 `yaml:"exclusive_products"`
	ExemptProducts    []string                 `yaml:"capacity_exempt_products"`
	SafetyStocks      map[string]int64         `yaml:"safety_stocks"`
	LookaheadDays     int                      `yaml:"lookahead_days"`
}

// Default returns the built-in configuration: a local SQLite store and the
// primary facility's scheduling tables.
func Default() *Config {
	return &Config{
		Database: gormstore.Config{Dialect: "sqlite3", DSN: "weekplan.db"},
		Listen:   ":8080",
	}
}

// Load reads and parses a YAML configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

var weekdayIndexes = map[string]int{
	"monday":    0,
	"tuesday":   1,
	"wednesday": 2,
	"thursday":  3,
	"friday":    4,
}

// FacilityConfig converts the YAML facility section into the engine's
// configuration, falling back to the built-in tables when the section is
// empty. The result is validated.
func (c *Config) FacilityConfig() (scheduling.FacilityConfig, error) {
	f := c.Facility
	if f.DefaultCapacity == 0 && len(f.CapacityOverrides) == 0 &&
		len(f.ExclusiveProducts) == 0 && len(f.ExemptProducts) == 0 &&
		len(f.SafetyStocks) == 0 {
		return scheduling.DefaultFacilityConfig(), nil
	}

	cfg := scheduling.FacilityConfig{
		DefaultCapacity:   entities.Quantity(f.DefaultCapacity),
		CapacityOverrides: make(map[scheduling.SlotKey]entities.Quantity),
		ExclusiveProducts: make(map[entities.ProductCode]bool),
		ExemptProducts:    make(map[entities.ProductCode]bool),
		SafetyStocks:      make(map[entities.ProductCode]entities.Quantity),
		Lookahead:         f.LookaheadDays,
	}

	for weekday, capacity := range f.CapacityOverrides {
		day, ok := weekdayIndexes[strings.ToLower(strings.TrimSpace(weekday))]
		if !ok {
			return scheduling.FacilityConfig{}, fmt.Errorf("unknown weekday in capacity overrides: %q", weekday)
		}
		cfg.CapacityOverrides[scheduling.SlotKey{Day: day, Shift: entities.DayShift}] = entities.Quantity(capacity.Day)
		cfg.CapacityOverrides[scheduling.SlotKey{Day: day, Shift: entities.NightShift}] = entities.Quantity(capacity.Night)
	}
	for _, code := range f.ExclusiveProducts {
		cfg.ExclusiveProducts[entities.ProductCode(strings.TrimSpace(code))] = true
	}
	for _, code := range f.ExemptProducts {
		cfg.ExemptProducts[entities.ProductCode(strings.TrimSpace(code))] = true
	}
	for code, floor := range f.SafetyStocks {
		cfg.SafetyStocks[entities.ProductCode(strings.TrimSpace(code))] = entities.Quantity(floor)
	}

	if err := cfg.Validate(); err != nil {
		return scheduling.FacilityConfig{}, err
	}
	return cfg, nil
}
