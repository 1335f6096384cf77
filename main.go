// landscape renders a procedural terminal landscape. Run with no flags for
// a random scene, or pin any part of it:
//
//	landscape -seed 42 -biomes ocean,mountains -atmosphere ominous_sunset
//	landscape -landscape coastal -time dusk -weather stormy
//	landscape -signature L1bQrT9xKw
//
// Inside the viewer: r regenerates, t/w/n cycle time, weather, and season,
// q or Esc quits. The status line shows the scene's signature, which can be
// passed back via -signature to reproduce it exactly.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"landscape/internal/atmosphere"
	"landscape/internal/signature"
	"landscape/internal/terrain"
	"landscape/internal/view"
)

func main() {
	var (
		seed      = flag.Int("seed", -1, "generation seed (0-16383; random if unset)")
		biomes    = flag.String("biomes", "", "comma-separated biomes, near to far (e.g. ocean,mountains)")
		landscape = flag.String("landscape", "", "named landscape preset (e.g. coastal)")
		atmo      = flag.String("atmosphere", "", "named atmosphere preset (e.g. clear_day)")
		timeOfDay = flag.String("time", "", "time of day override (e.g. dusk)")
		season    = flag.String("season", "", "season override (e.g. late_autumn)")
		weather   = flag.String("weather", "", "weather override (e.g. stormy)")
		sig       = flag.String("signature", "", "scene signature to reproduce (overridden by other flags)")
		list      = flag.Bool("list", false, "list biomes, landscapes, atmospheres, and components, then exit")
	)
	flag.Parse()

	if *list {
		printOptions()
		return
	}

	o, err := buildOverrides(*sig, *seed, *biomes, *landscape, *atmo, *timeOfDay, *season, *weather)
	if err != nil {
		fatal(err)
	}
	cfg, err := signature.FromRuntimeArgs(o)
	if err != nil {
		fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fatal(fmt.Errorf("create screen: %w", err))
	}
	if err := screen.Init(); err != nil {
		fatal(fmt.Errorf("init screen: %w", err))
	}

	viewer, err := view.NewViewer(screen, cfg)
	if err != nil {
		screen.Fini()
		fatal(err)
	}
	viewer.Run()
	screen.Fini()

	// Leave the signature behind so the scene can be shared or revisited.
	fmt.Println(cfg.Encode())
}

// buildOverrides parses flag values into the layered override set. Unset
// flags stay nil so lower layers (the signature, then defaults) show
// through.
func buildOverrides(sig string, seed int, biomes, landscape, atmo, timeOfDay, season, weather string) (signature.Overrides, error) {
	o := signature.Overrides{
		Signature:  sig,
		Landscape:  landscape,
		Atmosphere: atmo,
	}

	if seed >= 0 {
		o.Seed = &seed
	} else if sig == "" {
		s := rand.Intn(signature.MaxSeed + 1)
		o.Seed = &s
	}

	if biomes != "" {
		for _, name := range strings.Split(biomes, ",") {
			o.BiomeNames = append(o.BiomeNames, strings.TrimSpace(name))
		}
	}

	if timeOfDay != "" {
		t, err := atmosphere.ParseTimeOfDay(timeOfDay)
		if err != nil {
			return o, err
		}
		o.Time = &t
	}
	if season != "" {
		s, err := atmosphere.ParseSeason(season)
		if err != nil {
			return o, err
		}
		o.Season = &s
	}
	if weather != "" {
		w, err := atmosphere.ParseWeather(weather)
		if err != nil {
			return o, err
		}
		o.Weather = &w
	}
	return o, nil
}

func printOptions() {
	fmt.Println("biomes:     ", strings.Join(terrain.Names(), ", "))
	fmt.Println("landscapes: ", strings.Join(terrain.LandscapeNames(), ", "))
	fmt.Println("atmospheres:", strings.Join(atmosphere.PresetNames(), ", "))
	fmt.Println("times:      ", strings.Join(atmosphere.TimeNames(), ", "))
	fmt.Println("seasons:    ", strings.Join(atmosphere.SeasonNames(), ", "))
	fmt.Println("weather:    ", strings.Join(atmosphere.WeatherNames(), ", "))
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
