package entities

import (
	"encoding/json"
	"fmt"
)

// SpeedStat is created with every universe; roads use it to compute travel time.
const SpeedStat = "speed"

type StatKind string

const (
	StatInt   StatKind = "int"
	StatFloat StatKind = "float"
	StatText  StatKind = "text"
	StatBool  StatKind = "bool"
)

// StatValue holds one typed stat value.
type StatValue struct {
	Kind  StatKind
	Int   int64
	Float float64
	Text  string
	Bool  bool
}

func IntValue(v int64) StatValue     { return StatValue{Kind: StatInt, Int: v} }
func FloatValue(v float64) StatValue { return StatValue{Kind: StatFloat, Float: v} }
func TextValue(v string) StatValue   { return StatValue{Kind: StatText, Text: v} }
func BoolValue(v bool) StatValue     { return StatValue{Kind: StatBool, Bool: v} }

type statValueJSON struct {
	Type  StatKind        `json:"type"`
	Value json.RawMessage `json:"value"`
}

func (v StatValue) MarshalJSON() ([]byte, error) {
	var (
		raw []byte
		err error
	)
	switch v.Kind {
	case StatInt:
		raw, err = json.Marshal(v.Int)
	case StatFloat:
		raw, err = json.Marshal(v.Float)
	case StatText:
		raw, err = json.Marshal(v.Text)
	case StatBool:
		raw, err = json.Marshal(v.Bool)
	default:
		return nil, fmt.Errorf("stat value: unknown kind %q", v.Kind)
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(statValueJSON{Type: v.Kind, Value: raw})
}

func (v *StatValue) UnmarshalJSON(data []byte) error {
	var in statValueJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	out := StatValue{Kind: in.Type}
	var err error
	switch in.Type {
	case StatInt:
		err = json.Unmarshal(in.Value, &out.Int)
	case StatFloat:
		err = json.Unmarshal(in.Value, &out.Float)
	case StatText:
		err = json.Unmarshal(in.Value, &out.Text)
	case StatBool:
		err = json.Unmarshal(in.Value, &out.Bool)
	default:
		return fmt.Errorf("stat value: unknown kind %q", in.Type)
	}
	if err != nil {
		return fmt.Errorf("stat value %s: %w", in.Type, err)
	}
	*v = out
	return nil
}

// Compare orders two numeric values. ok is false when either is not numeric.
func (v StatValue) Compare(o StatValue) (cmp int, ok bool) {
	a, aok := v.number()
	b, bok := o.number()
	if !aok || !bok {
		return 0, false
	}
	switch {
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	}
	return 0, true
}

func (v StatValue) number() (float64, bool) {
	switch v.Kind {
	case StatInt:
		return float64(v.Int), true
	case StatFloat:
		return v.Float, true
	}
	return 0, false
}

// Stat is a universe-wide characteristic such as speed.
type Stat struct {
	ID         int64
	UniverseID string
	Name       string
	BaseValue  StatValue
	Formula    string
	Min        *StatValue
	Max        *StatValue
}

// IsWithinBounds reports whether v respects the stat's min and max.
// Non-numeric values only have to match the kind of the base value.
func (s Stat) IsWithinBounds(v StatValue) bool {
	if v.Kind != s.BaseValue.Kind {
		if _, ok := v.number(); !ok {
			return false
		}
		if _, ok := s.BaseValue.number(); !ok {
			return false
		}
	}
	if s.Min != nil {
		if c, ok := v.Compare(*s.Min); ok && c < 0 {
			return false
		}
	}
	if s.Max != nil {
		if c, ok := v.Compare(*s.Max); ok && c > 0 {
			return false
		}
	}
	return true
}

// DefaultStats returns the stats every new universe starts with.
func DefaultStats(universeID string) []Stat {
	minSpeed, maxSpeed := IntValue(0), IntValue(999)
	return []Stat{{
		UniverseID: universeID,
		Name:       SpeedStat,
		BaseValue:  IntValue(3),
		Min:        &minSpeed,
		Max:        &maxSpeed,
	}}
}
