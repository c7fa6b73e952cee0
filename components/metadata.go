package components

import "strings"

// NeedKind identifies one of the four needs.
type NeedKind uint8

const (
	NeedHunger NeedKind = iota
	NeedEnergy
	NeedHygiene
	NeedHappiness

	NumNeeds = 4
)

// String returns the display name for a NeedKind.
func (k NeedKind) String() string {
	names := NeedNames()
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// NeedNames returns the display names for all needs.
// The order matches the NeedKind constants.
func NeedNames() []string {
	return []string{"Hunger", "Energy", "Hygiene", "Happiness"}
}

// FieldDescriptor describes a component field for UI display.
type FieldDescriptor struct {
	ID     string  // Unique identifier
	Label  string  // Display name
	Format string  // Printf format (e.g., "%.0f")
	Min    float64 // Minimum value (for bars)
	Max    float64 // Maximum value (for bars)
	IsBar  bool    // True to render as progress bar
	Warn   float64 // Values at or below this render as critical
	Group  string  // Logical grouping
}

// NeedFieldDescriptors returns display metadata for the four need bars.
// Values at or below critical render as critical.
func NeedFieldDescriptors(critical float64) []FieldDescriptor {
	out := make([]FieldDescriptor, NumNeeds)
	for i, name := range NeedNames() {
		out[i] = FieldDescriptor{
			ID:     strings.ToLower(name),
			Label:  name,
			Format: "%.0f",
			Min:    NeedMin,
			Max:    NeedMax,
			IsBar:  true,
			Warn:   critical,
			Group:  "needs",
		}
	}
	return out
}

// ProgressFieldDescriptors returns display metadata for level and experience.
func ProgressFieldDescriptors() []FieldDescriptor {
	return []FieldDescriptor{
		{ID: "level", Label: "Level", Format: "%d", Group: "progress"},
		{ID: "xp", Label: "XP", Format: "%d/%d", IsBar: true, Group: "progress"},
	}
}
