// Package atmosphere models sky, lighting, and weather: enums for the three
// component codes, synthesis of an Atmosphere from them, and the per-cell
// filter (haze, precipitation, color grade) the compositor applies.
package atmosphere

import (
	"fmt"
	"math"
	"strings"

	"landscape/internal/color"
	"landscape/internal/noise"
	"landscape/internal/texture"
)

// TimeOfDay codes fit 3 bits.
type TimeOfDay uint8

const (
	Dawn TimeOfDay = iota
	Morning
	Noon
	Afternoon
	Dusk
	Evening
	Night
	LateNight
)

// Season codes fit 4 bits; values 12-15 are reserved.
type Season uint8

const (
	EarlySpring Season = iota
	MidSpring
	LateSpring
	EarlySummer
	MidSummer
	LateSummer
	EarlyAutumn
	MidAutumn
	LateAutumn
	EarlyWinter
	MidWinter
	LateWinter
)

// Weather codes fit 3 bits; value 7 is reserved.
type Weather uint8

const (
	Clear Weather = iota
	PartlyCloudy
	Cloudy
	Foggy
	Rainy
	Snowy
	Stormy
)

var timeNames = [...]string{
	"dawn", "morning", "noon", "afternoon", "dusk", "evening", "night", "late_night",
}

var seasonNames = [...]string{
	"early_spring", "mid_spring", "late_spring",
	"early_summer", "mid_summer", "late_summer",
	"early_autumn", "mid_autumn", "late_autumn",
	"early_winter", "mid_winter", "late_winter",
}

var weatherNames = [...]string{
	"clear", "partly_cloudy", "cloudy", "foggy", "rainy", "snowy", "stormy",
}

func (t TimeOfDay) String() string { return timeNames[t] }
func (s Season) String() string    { return seasonNames[s] }
func (w Weather) String() string   { return weatherNames[w] }

// Next wraps to the following time of day; the viewer uses these to cycle.
func (t TimeOfDay) Next() TimeOfDay { return TimeOfDay((int(t) + 1) % len(timeNames)) }

// Next wraps to the following season.
func (s Season) Next() Season { return Season((int(s) + 1) % len(seasonNames)) }

// Next wraps to the following weather.
func (w Weather) Next() Weather { return Weather((int(w) + 1) % len(weatherNames)) }

// TimeNames returns all time-of-day names in code order.
func TimeNames() []string { return append([]string(nil), timeNames[:]...) }

// SeasonNames returns all season names in code order.
func SeasonNames() []string { return append([]string(nil), seasonNames[:]...) }

// WeatherNames returns all weather names in code order.
func WeatherNames() []string { return append([]string(nil), weatherNames[:]...) }

// ParseTimeOfDay resolves a time-of-day name like "noon".
func ParseTimeOfDay(name string) (TimeOfDay, error) {
	for i, n := range timeNames {
		if n == name {
			return TimeOfDay(i), nil
		}
	}
	return 0, fmt.Errorf("unknown time of day %q (valid: %s)", name, strings.Join(timeNames[:], ", "))
}

// ParseSeason resolves a season name like "mid_summer".
func ParseSeason(name string) (Season, error) {
	for i, n := range seasonNames {
		if n == name {
			return Season(i), nil
		}
	}
	return 0, fmt.Errorf("unknown season %q (valid: %s)", name, strings.Join(seasonNames[:], ", "))
}

// ParseWeather resolves a weather name like "rainy".
func ParseWeather(name string) (Weather, error) {
	for i, n := range weatherNames {
		if n == name {
			return Weather(i), nil
		}
	}
	return 0, fmt.Errorf("unknown weather %q (valid: %s)", name, strings.Join(weatherNames[:], ", "))
}

// Precipitation is the screen-space overlay for rainy, snowy, and stormy
// weather.
type Precipitation struct {
	Chars   []rune
	Color   color.RGB
	Density float64
}

// ColorGrade is the post-process transform derived from the three component
// codes: one multiplicative brightness plus per-channel additive shifts.
type ColorGrade struct {
	Brightness  float64
	WarmthShift int // red channel shift from time of day
	BlueShift   int // blue channel shift from time of day
	SeasonR     int
	SeasonG     int
	SeasonB     int
}

// Apply grades a single color, clamping each channel to range.
func (g ColorGrade) Apply(c color.RGB) color.RGB {
	return color.Clamped(
		int(float64(c.R)*g.Brightness)+g.WarmthShift+g.SeasonR,
		int(float64(c.G)*g.Brightness)+g.SeasonG,
		int(float64(c.B)*g.Brightness)+g.BlueShift+g.SeasonB,
	)
}

// Atmosphere is a fully resolved sky/lighting/weather configuration.
type Atmosphere struct {
	Name    string
	Time    TimeOfDay
	Season  Season
	Weather Weather

	// Sky doubles as the haze color source: its gradient is sampled by
	// normalized screen height for both sky cells and haze tinting.
	Sky texture.Texture

	HazePower     float64
	HazeIntensity float64
	Precip        *Precipitation
	Grade         ColorGrade
}

// Filter applies the atmosphere to one terrain cell, in order: haze,
// precipitation overlay, color grade. zf is the cell's depth slice, ny the
// normalized screen row, depthFrac the normalized depth.
func (a *Atmosphere) Filter(x, y int, zf, ny, depthFrac float64, ch rune, fg, bg color.RGB, seed int64) (rune, color.RGB, color.RGB) {
	hf := math.Pow(depthFrac, a.HazePower) * a.HazeIntensity
	if hf > 0 {
		haze := a.Sky.Colors.At(ny)
		fg = color.Lerp(fg, haze, hf)
		bg = color.Lerp(bg, haze, hf)
	}

	if a.Precip != nil {
		ch, fg = a.precipitate(x, y, zf, ny, ch, fg, seed)
	}

	return ch, a.Grade.Apply(fg), a.Grade.Apply(bg)
}

// precipitate replaces the cell character with a falling-particle glyph
// where the overlay noise fires. Blank cells use half the density so empty
// terrain does not read as solid rain.
func (a *Atmosphere) precipitate(x, y int, zf, ny float64, ch rune, fg color.RGB, seed int64) (rune, color.RGB) {
	pc := noise.Value(float64(x)*500, zf*500+ny*500, seed)
	limit := a.Precip.Density
	if ch == ' ' {
		limit *= 0.5
	}
	if pc > limit {
		return ch, fg
	}
	p := noise.Value(zf+float64(x)*0.1, zf+ny, seed)
	ch = noise.Choice(a.Precip.Chars, seed+int64(x)+int64(y)*57)
	return ch, color.Lerp(a.Precip.Color, fg, p)
}
