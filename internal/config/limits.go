package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"rpbot/internal/domain/entities"
	"rpbot/internal/ports/output"
)

// DefaultTier is the tier of every new universe.
const DefaultTier = "free"

var _ output.LimitProvider = (*Limits)(nil)

// Limits maps a tier name to its caps.
type Limits struct {
	Tiers map[string]entities.TierLimits `toml:"tiers"`
}

// DefaultLimits returns the caps applied when no limits file is configured.
func DefaultLimits() *Limits {
	return &Limits{Tiers: map[string]entities.TierLimits{
		DefaultTier: {Universes: 2, ServersPerUniverse: 2},
	}}
}

// LoadLimits reads a TOML file of the form:
//
//	[tiers.free]
//	universes = 2
//	servers_per_universe = 2
//
// An empty path returns DefaultLimits. The free tier is always present.
func LoadLimits(path string) (*Limits, error) {
	if path == "" {
		return DefaultLimits(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: lecture de %s: %w", path, err)
	}
	return ParseLimits(data)
}

// ParseLimits decodes limits from TOML.
func ParseLimits(data []byte) (*Limits, error) {
	var l Limits
	if err := toml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("config: limites invalides: %w", err)
	}
	if l.Tiers == nil {
		l.Tiers = map[string]entities.TierLimits{}
	}
	if _, ok := l.Tiers[DefaultTier]; !ok {
		l.Tiers[DefaultTier] = DefaultLimits().Tiers[DefaultTier]
	}
	for name, t := range l.Tiers {
		if t.Universes < 0 || t.ServersPerUniverse < 0 || t.PlacesPerUniverse < 0 || t.RoadsPerUniverse < 0 {
			return nil, errors.New("config: le palier " + name + " a une limite négative")
		}
	}
	return &l, nil
}

// For returns the caps of tier, falling back to the free tier.
func (l *Limits) For(tier string) entities.TierLimits {
	if t, ok := l.Tiers[tier]; ok {
		return t
	}
	return l.Tiers[DefaultTier]
}
