package atmosphere

import "landscape/internal/color"

// Sky color palettes by time of day, sampled top (0) to horizon (1).
var timeSkyPalettes = map[TimeOfDay]color.Gradient{
	Dawn:      color.NewGradient("#ecb8ec", "#F6FF8F", "#99CCDA", "#77AEBD"),
	Morning:   color.NewGradient("#87CEEB", "#4A90D9", "#2E6BA6"),
	Noon:      color.NewGradient("#aabbff", "#006aff", "#0069fc"),
	Afternoon: color.NewGradient("#87CEEB", "#5A9BD4", "#3A7BC0"),
	Dusk:      color.NewGradient("#FFD500", "#ff0800", "#480000"),
	Evening:   color.NewGradient("#2E1A47", "#1A0A2E", "#0A0515"),
	Night:     color.NewGradient("#06063A", "#000000"),
	LateNight: color.NewGradient("#020220", "#000000"),
}

// Weather overrides for the sky palette. Absent entries keep the time-based
// palette; fog stays ground-level, adding haze without recoloring the sky.
var weatherSkyOverrides = map[Weather]color.Gradient{
	Cloudy: color.NewGradient("#8a8a9a", "#6a6a7a"),
	Rainy:  color.NewGradient("#8090a8", "#6a7a92"),
	Snowy:  color.NewGradient("#eaeaea", "#ffffff"),
	Stormy: color.NewGradient("#4a4a5a", "#2a2a3a"),
}

type hazeShape struct {
	power, intensity float64
}

var hazeSettings = map[Weather]hazeShape{
	Clear:        {2.0, 0.0},
	PartlyCloudy: {2.0, 0.2},
	Cloudy:       {1.5, 0.4},
	Foggy:        {0.3, 0.9},
	Rainy:        {1.5, 0.5},
	Snowy:        {2.0, 0.8},
	Stormy:       {1.0, 0.7},
}

type timeTone struct {
	brightness   float64
	warmth, blue int
}

// Brightness and tone by time of day.
var timeAdjustments = map[TimeOfDay]timeTone{
	Dawn:      {0.9, 20, -10},
	Morning:   {1.0, 5, 0},
	Noon:      {1.1, 0, 0},
	Afternoon: {1.05, 5, -5},
	Dusk:      {0.5, 15, -15},
	Evening:   {0.5, -10, 10},
	Night:     {0.4, -20, 20},
	LateNight: {0.35, -25, 25},
}

var weatherBrightness = map[Weather]float64{
	Clear:        1.0,
	PartlyCloudy: 0.95,
	Cloudy:       0.85,
	Foggy:        1.0,
	Rainy:        0.88,
	Snowy:        0.85,
	Stormy:       0.7,
}

// Star visibility by time of day: 0 is fully visible, 1 invisible.
var starVisibility = map[TimeOfDay]float64{
	Dawn:      0.7,
	Morning:   1.0,
	Noon:      1.0,
	Afternoon: 1.0,
	Dusk:      0.5,
	Evening:   0.2,
	Night:     0.1,
	LateNight: 0.1,
}

var precipitation = map[Weather]Precipitation{
	Rainy:  {Chars: []rune("/"), Color: color.Hex("#7a97ba"), Density: 0.12},
	Snowy:  {Chars: []rune("❄*❅"), Color: color.Hex("#979797"), Density: 0.2},
	Stormy: {Chars: []rune("/|"), Color: color.Hex("#5a7a9a"), Density: 0.18},
}

type seasonTone struct {
	brightness float64
	r, g, b    int
}

// Season grading: a brightness multiplier plus per-channel tint shifts.
// Mid-summer is the neutral baseline; late autumn is deliberately dramatic.
var seasonAdjustments = map[Season]seasonTone{
	EarlySpring: {1.0, 0, 5, 5},
	MidSpring:   {1.0, 5, 5, 0},
	LateSpring:  {1.0, 5, 5, -5},
	EarlySummer: {1.0, 5, 0, -5},
	MidSummer:   {1.0, 0, 0, 0},
	LateSummer:  {0.95, 10, 5, -5},
	EarlyAutumn: {0.9, 15, 5, -10},
	MidAutumn:   {0.8, 20, -5, -15},
	LateAutumn:  {0.3, 10, -15, -20},
	EarlyWinter: {0.85, 0, 0, 10},
	MidWinter:   {0.8, -5, 0, 15},
	LateWinter:  {0.85, -5, 5, 10},
}
