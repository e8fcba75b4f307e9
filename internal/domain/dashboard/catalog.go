package dashboard

import (
	_ "embed"
	"errors"
	"fmt"

	"ask-astro/internal/domain/astrology"

	"gopkg.in/yaml.v3"
)

//go:embed forecasts.yaml
var defaultCatalog []byte

type Forecasts struct {
	Daily  string `yaml:"daily"`
	Love   string `yaml:"love"`
	Career string `yaml:"career"`
}

type Insight struct {
	Kind  string `yaml:"kind"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Catalog son los textos fijos del dashboard.
type Catalog struct {
	Default  Forecasts                       `yaml:"default"`
	Elements map[astrology.Element]Forecasts `yaml:"elements"`
	Vibes    map[int]string                  `yaml:"vibes"`
	Insights []Insight                       `yaml:"insights"`
}

func ParseCatalog(raw []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Catalog{}, fmt.Errorf("dashboard: parse catalog: %w", err)
	}
	if c.Default.Daily == "" || c.Default.Love == "" || c.Default.Career == "" {
		return Catalog{}, errors.New("dashboard: default forecasts are incomplete")
	}
	for n := 1; n <= 9; n++ {
		if c.Vibes[n] == "" {
			return Catalog{}, fmt.Errorf("dashboard: missing vibe for personal day %d", n)
		}
	}
	return c, nil
}

func DefaultCatalog() Catalog {
	c, err := ParseCatalog(defaultCatalog)
	if err != nil {
		panic(err)
	}
	return c
}

// ForecastsFor completa los textos del elemento con los de default.
func (c Catalog) ForecastsFor(e astrology.Element) Forecasts {
	out := c.Default
	if f, ok := c.Elements[e]; ok {
		if f.Daily != "" {
			out.Daily = f.Daily
		}
		if f.Love != "" {
			out.Love = f.Love
		}
		if f.Career != "" {
			out.Career = f.Career
		}
	}
	return out
}

// Vibe arma la frase de numerología del día.
func (c Catalog) Vibe(personalDay int) string {
	return fmt.Sprintf("You're in a Personal Day %d, %s", personalDay, c.Vibes[personalDay])
}
