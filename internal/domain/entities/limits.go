package entities

// TierLimits caps what a universe of a given tier may hold. Zero means unlimited.
type TierLimits struct {
	Universes          int `toml:"universes"`
	ServersPerUniverse int `toml:"servers_per_universe"`
	PlacesPerUniverse  int `toml:"places_per_universe"`
	RoadsPerUniverse   int `toml:"roads_per_universe"`
}

// Allows reports whether one more item fits when count already exist.
func Allows(limit, count int) bool {
	return limit <= 0 || count < limit
}
