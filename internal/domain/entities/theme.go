package entities

import "strings"

// Theme is a palette entry used to color-tag grouped bills.
type Theme struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Palette is the fixed set of group colors. The first entry is the default.
//
// The palette is index-addressed by a description hash when no explicit theme
// was chosen, so order changes here would silently recolor existing groups.
var Palette = []Theme{
	{Name: "slate", Hex: "#64748b"},
	{Name: "red", Hex: "#ef4444"},
	{Name: "orange", Hex: "#f97316"},
	{Name: "amber", Hex: "#f59e0b"},
	{Name: "lime", Hex: "#84cc16"},
	{Name: "green", Hex: "#22c55e"},
	{Name: "teal", Hex: "#14b8a6"},
	{Name: "cyan", Hex: "#06b6d4"},
	{Name: "blue", Hex: "#3b82f6"},
	{Name: "violet", Hex: "#8b5cf6"},
	{Name: "fuchsia", Hex: "#d946ef"},
	{Name: "rose", Hex: "#f43f5e"},
}

// ResolveTheme picks the palette entry for a bill.
//
// An explicit colorTheme matching a palette name wins. Otherwise the
// description is hashed into a palette index so that every bill sharing a
// group name renders with the same color, across sessions and across
// independently running instances, without storing redundant color state.
// With neither input the default (first) entry is returned.
func ResolveTheme(colorTheme, description string) Theme {
	if colorTheme != "" {
		for _, t := range Palette {
			if strings.EqualFold(t.Name, colorTheme) {
				return t
			}
		}
	}
	if description != "" {
		return Palette[descriptionHash(description)%len(Palette)]
	}
	return Palette[0]
}

// descriptionHash is a position-sensitive weighted rolling hash. It must stay
// deterministic: changing it recolors every implicitly themed group.
func descriptionHash(s string) int {
	h := 0
	for i, r := range s {
		h = h*31 + int(r)*(i+1)
		if h < 0 {
			h = -h
		}
	}
	// Negating math.MinInt yields math.MinInt again, so a negative value
	// can survive the flips above; clamp it so the palette index stays valid.
	if h < 0 {
		h = 0
	}
	return h
}
