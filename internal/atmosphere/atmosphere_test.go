package atmosphere

import (
	"strings"
	"testing"

	"landscape/internal/color"
)

func TestEnumWidths(t *testing.T) {
	if LateNight > 7 {
		t.Error("time of day exceeds 3 bits")
	}
	if LateWinter > 15 {
		t.Error("season exceeds 4 bits")
	}
	if Stormy > 7 {
		t.Error("weather exceeds 3 bits")
	}
}

func TestParseRoundTrips(t *testing.T) {
	for i := Dawn; i <= LateNight; i++ {
		got, err := ParseTimeOfDay(i.String())
		if err != nil || got != i {
			t.Errorf("ParseTimeOfDay(%q) = %v, %v", i.String(), got, err)
		}
	}
	for i := EarlySpring; i <= LateWinter; i++ {
		got, err := ParseSeason(i.String())
		if err != nil || got != i {
			t.Errorf("ParseSeason(%q) = %v, %v", i.String(), got, err)
		}
	}
	for i := Clear; i <= Stormy; i++ {
		got, err := ParseWeather(i.String())
		if err != nil || got != i {
			t.Errorf("ParseWeather(%q) = %v, %v", i.String(), got, err)
		}
	}
}

func TestParseUnknownListsOptions(t *testing.T) {
	_, err := ParseWeather("hail")
	if err == nil || !strings.Contains(err.Error(), "stormy") {
		t.Errorf("error should list valid weathers: %v", err)
	}
}

func TestLookupMatchesPresetsExactly(t *testing.T) {
	for name, p := range Presets {
		a, ok := Lookup(p.Time, p.Season, p.Weather)
		if !ok {
			t.Fatalf("preset %q not found by its own components", name)
		}
		if a.Time != p.Time || a.Season != p.Season || a.Weather != p.Weather {
			t.Errorf("preset %q resolved with wrong components", name)
		}
	}
	// A combination no preset covers must miss.
	if _, ok := Lookup(Morning, EarlyWinter, Cloudy); ok {
		t.Error("Lookup matched a combination no preset names")
	}
}

func TestGetSynthesizesUnmatchedCombinations(t *testing.T) {
	a := Get(Morning, EarlyWinter, Cloudy)
	if a == nil {
		t.Fatal("Get returned nil")
	}
	if a.Time != Morning || a.Season != EarlyWinter || a.Weather != Cloudy {
		t.Errorf("synthesized atmosphere has wrong components: %+v", a)
	}
}

func TestSynthesizePrecipitationByWeather(t *testing.T) {
	for w := Clear; w <= Stormy; w++ {
		a := Synthesize(Noon, MidSummer, w)
		wantPrecip := w == Rainy || w == Snowy || w == Stormy
		if (a.Precip != nil) != wantPrecip {
			t.Errorf("weather %v: precip = %v, want %v", w, a.Precip != nil, wantPrecip)
		}
	}
}

func TestSynthesizeStarsOnlyWhenClearEnough(t *testing.T) {
	if len(Synthesize(Night, MidSummer, Clear).Sky.Details) == 0 {
		t.Error("clear night sky has no stars")
	}
	if len(Synthesize(Noon, MidSummer, Clear).Sky.Details) != 0 {
		t.Error("noon sky should wash out stars")
	}
	if len(Synthesize(Night, MidSummer, Stormy).Sky.Details) != 0 {
		t.Error("stormy sky should hide stars")
	}
}

func TestGradeApplyClampsAndScales(t *testing.T) {
	g := ColorGrade{Brightness: 2, WarmthShift: 100, BlueShift: -300, SeasonG: 10}
	got := g.Apply(color.RGB{R: 200, G: 10, B: 40})
	if got != (color.RGB{R: 255, G: 30, B: 0}) {
		t.Fatalf("Apply = %v, want {255 30 0}", got)
	}
	neutral := ColorGrade{Brightness: 1}
	c := color.RGB{R: 12, G: 34, B: 56}
	if neutral.Apply(c) != c {
		t.Errorf("neutral grade changed %v to %v", c, neutral.Apply(c))
	}
}

func TestFilterClearNoonLeavesColorsUngraded(t *testing.T) {
	// Clear weather has zero haze intensity and no precipitation, so only
	// the grade touches the cell.
	a := Synthesize(Noon, MidSummer, Clear)
	fg := color.RGB{R: 100, G: 100, B: 100}
	bg := color.RGB{R: 50, G: 50, B: 50}
	ch, gotFG, gotBG := a.Filter(3, 4, 10, 0.5, 0.8, 'x', fg, bg, 42)
	if ch != 'x' {
		t.Errorf("character changed to %q", ch)
	}
	if gotFG != a.Grade.Apply(fg) || gotBG != a.Grade.Apply(bg) {
		t.Errorf("clear filter did more than grading: %v %v", gotFG, gotBG)
	}
}

func TestFilterFoggyHazesTowardSky(t *testing.T) {
	a := Synthesize(Noon, MidSummer, Foggy)
	fg := color.RGB{R: 0, G: 0, B: 0}
	_, hazed, _ := a.Filter(0, 0, 50, 0.5, 1.0, ' ', fg, fg, 1)
	_, near, _ := a.Filter(0, 0, 0, 0.5, 0.0, ' ', fg, fg, 1)
	if hazed == near {
		t.Error("full-depth haze equals zero-depth haze")
	}
}

func TestFilterDeterministic(t *testing.T) {
	a := Synthesize(Dusk, LateAutumn, Stormy)
	for i := 0; i < 100; i++ {
		c1, f1, b1 := a.Filter(i, i*2, float64(i), 0.3, 0.6, ' ', color.RGB{R: 90, G: 90, B: 90}, color.RGB{R: 20, G: 20, B: 20}, 7)
		c2, f2, b2 := a.Filter(i, i*2, float64(i), 0.3, 0.6, ' ', color.RGB{R: 90, G: 90, B: 90}, color.RGB{R: 20, G: 20, B: 20}, 7)
		if c1 != c2 || f1 != f2 || b1 != b2 {
			t.Fatalf("filter not deterministic at %d", i)
		}
	}
}

func TestByNameUnknown(t *testing.T) {
	_, err := ByName("maelstrom")
	if err == nil || !strings.Contains(err.Error(), "clear_day") {
		t.Errorf("error should list presets: %v", err)
	}
}

func TestNextWrapsAround(t *testing.T) {
	if LateNight.Next() != Dawn {
		t.Errorf("LateNight.Next() = %v, want Dawn", LateNight.Next())
	}
	if LateWinter.Next() != EarlySpring {
		t.Errorf("LateWinter.Next() = %v, want EarlySpring", LateWinter.Next())
	}
	if Stormy.Next() != Clear {
		t.Errorf("Stormy.Next() = %v, want Clear", Stormy.Next())
	}
	if Dawn.Next() != Morning {
		t.Errorf("Dawn.Next() = %v, want Morning", Dawn.Next())
	}
}
