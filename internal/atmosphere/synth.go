package atmosphere

import (
	"fmt"
	"sort"
	"strings"

	"landscape/internal/color"
	"landscape/internal/texture"
)

// Preset names a fixed (time, season, weather) combination.
type Preset struct {
	Time    TimeOfDay
	Season  Season
	Weather Weather
}

// Presets are the named atmosphere combinations; each resolves through the
// same Synthesize path as ad-hoc component codes.
var Presets = map[string]Preset{
	"clear_day":      {Noon, MidSummer, Clear},
	"foggy_day":      {Noon, MidSummer, Foggy},
	"rainy_day":      {Noon, MidSummer, Rainy},
	"snowy_day":      {Noon, MidWinter, Snowy},
	"clear_night":    {Night, MidSummer, Clear},
	"apricot_dawn":   {Dawn, MidSummer, Clear},
	"ominous_sunset": {Dusk, LateAutumn, Stormy},
}

// PresetNames returns the preset keys in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName resolves a named preset into a full Atmosphere.
func ByName(name string) (*Atmosphere, error) {
	p, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown atmosphere %q (valid: %s)",
			name, strings.Join(PresetNames(), ", "))
	}
	a := Synthesize(p.Time, p.Season, p.Weather)
	a.Name = titleCase(name)
	return a, nil
}

// Lookup returns the named preset exactly matching the three component
// codes, or false when no preset covers the combination.
func Lookup(t TimeOfDay, s Season, w Weather) (*Atmosphere, bool) {
	for name, p := range Presets {
		if p.Time == t && p.Season == s && p.Weather == w {
			a := Synthesize(t, s, w)
			a.Name = titleCase(name)
			return a, true
		}
	}
	return nil, false
}

// Get resolves component codes to an Atmosphere: a named preset when one
// matches exactly, otherwise a synthesized one. Every component combination
// is reachable; the preset table is a naming convenience, not a constraint.
func Get(t TimeOfDay, s Season, w Weather) *Atmosphere {
	if a, ok := Lookup(t, s, w); ok {
		return a
	}
	return Synthesize(t, s, w)
}

// Synthesize composes an Atmosphere from the three component codes:
// sky palette from weather override or time of day, haze shape from weather,
// a color grade combining all three, stars when the sky is clear enough,
// and a precipitation overlay for wet weather.
func Synthesize(t TimeOfDay, s Season, w Weather) *Atmosphere {
	sky, ok := weatherSkyOverrides[w]
	if !ok {
		sky = timeSkyPalettes[t]
	}

	haze := hazeSettings[w]

	tone := timeAdjustments[t]
	season := seasonAdjustments[s]
	grade := ColorGrade{
		Brightness:  tone.brightness * weatherBrightness[w] * season.brightness,
		WarmthShift: tone.warmth,
		BlueShift:   tone.blue,
		SeasonR:     season.r,
		SeasonG:     season.g,
		SeasonB:     season.b,
	}

	var details []texture.Detail
	if w == Clear || w == PartlyCloudy {
		details = starDetails(starVisibility[t])
	}

	a := &Atmosphere{
		Name:          fmt.Sprintf("%s %s", titleCase(w.String()), strings.ReplaceAll(t.String(), "_", " ")),
		Time:          t,
		Season:        s,
		Weather:       w,
		Sky:           texture.Texture{Colors: sky, Details: details},
		HazePower:     haze.power,
		HazeIntensity: haze.intensity,
		Grade:         grade,
	}
	if p, ok := precipitation[w]; ok {
		precip := p
		a.Precip = &precip
	}
	return a
}

// starDetails builds the star overlays for a given visibility; 1 or more
// means stars are washed out entirely.
func starDetails(visibility float64) []texture.Detail {
	if visibility >= 1 {
		return nil
	}
	return []texture.Detail{
		{
			Name:      "Bright Stars",
			Chars:     []rune("."),
			Frequency: 50,
			Density:   0.01,
			Colors:    color.NewGradient("#ffffff"),
			Blend:     visibility * 0.1,
		},
		{
			Name:      "Dim Stars",
			Chars:     []rune("."),
			Frequency: 50,
			Density:   0.05,
			Colors:    color.NewGradient("#ffffff", "#cccccc"),
			Blend:     visibility*0.4 + 0.3,
		},
	}
}

// titleCase turns "partly_cloudy" into "Partly Cloudy".
func titleCase(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
