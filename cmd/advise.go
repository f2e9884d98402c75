package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"agrimoga/internal/advisory"
	"agrimoga/internal/catalog"
	"agrimoga/internal/config"
	"agrimoga/internal/i18n"
	"agrimoga/internal/models"
)

type adviseFlags struct {
	crop, zone, lang, mode string
	temp, wind, rain       float64
	rainyTomorrow          bool
	plot                   advisory.Plot
}

func adviseCmd(cfgDir *string) *cobra.Command {
	var f adviseFlags

	cmd := &cobra.Command{
		Use:   "advise",
		Short: "Print one irrigation decision for the given crop, plot and weather",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*cfgDir)
			if err != nil {
				return err
			}
			return runAdvise(cmd.OutOrStdout(), f, cfg.Irrigation)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.crop, "crop", "strawberry", "crop key: strawberry, raspberry or avocado")
	fl.StringVar(&f.zone, "zone", "", "zone preset name; implies per-plant mode")
	fl.StringVar(&f.lang, "lang", "fr", "output locale: ar, fr or en")
	fl.StringVar(&f.mode, "mode", string(advisory.ModeArea), "area or plant")
	fl.Float64Var(&f.temp, "temp", 25, "temperature in °C")
	fl.Float64Var(&f.wind, "wind", 10, "wind in km/h")
	fl.Float64Var(&f.rain, "rain", 20, "rain probability or humidity in %")
	fl.BoolVar(&f.rainyTomorrow, "rainy-tomorrow", false, "rain expected tomorrow")
	fl.Float64Var(&f.plot.AreaM2, "area", 100, "area in m²")
	fl.Float64Var(&f.plot.EmittersPerM2, "emitters", 0, "emitters per m²")
	fl.Float64Var(&f.plot.EmitterFlowLph, "flow", 0, "emitter (or dripper) flow in L/h")
	fl.Float64Var(&f.plot.PumpFlowLph, "pump", 0, "network flow in L/h")
	fl.Float64Var(&f.plot.Plants, "plants", 0, "number of plants")
	fl.Float64Var(&f.plot.DrippersPerPlant, "drippers", 0, "drippers per plant")
	return cmd
}

func runAdvise(w io.Writer, f adviseFlags, cfg advisory.Config) error {
	l, err := i18n.ParseLocale(f.lang)
	if err != nil {
		return err
	}
	cat, err := catalog.Default()
	if err != nil {
		return err
	}
	profile := cat.Get(f.crop)

	plot := f.plot
	plot.Mode = advisory.Mode(f.mode)
	if f.zone != "" {
		z, ok := profile.Zone(f.zone)
		if !ok {
			return fmt.Errorf("unknown zone %q for %s", f.zone, profile.Key)
		}
		plot = plot.WithZone(z)
	}

	reading := models.WeatherReading{
		TemperatureC:      f.temp,
		WindKmh:           f.wind,
		RainOrHumidityPct: f.rain,
		RainyTomorrow:     f.rainyTomorrow,
	}
	d := advisory.Recommend(profile, reading, plot, cfg, l)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

func validateCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate-catalog [path]",
		Short: "Validate a crop catalogue YAML file, or the embedded one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidateCatalog(cmd.OutOrStdout(), args)
		},
	}
}

func runValidateCatalog(w io.Writer, args []string) error {
	var (
		cat *catalog.Catalog
		err error
		src = "embedded catalog"
	)
	if len(args) == 1 {
		src = args[0]
		cat, err = catalog.Load(src)
	} else {
		cat, err = catalog.Default()
	}
	if err != nil {
		return err
	}
	crops := cat.List()
	diseases := 0
	for _, p := range crops {
		diseases += len(p.Diseases)
	}
	_, err = fmt.Fprintf(w, "%s: ok (%d crops, %d diseases)\n", src, len(crops), diseases)
	return err
}
