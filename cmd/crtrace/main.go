// Command crtrace samples a Catmull-Rom path defined in a YAML file and
// writes the resulting positions and tangents as CSV, for previewing
// authored paths and feeding motion tooling.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/pathkit/catrom"
)

// pathFile is the on-disk path definition.
type pathFile struct {
	Points []pointDef `yaml:"points"`
	Loop   bool       `yaml:"loop"`
}

type pointDef struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// sampleRow is one CSV output row.
type sampleRow struct {
	T     float64 `csv:"t"`
	X     float64 `csv:"x"`
	Y     float64 `csv:"y"`
	Z     float64 `csv:"z"`
	VX    float64 `csv:"vx"`
	VY    float64 `csv:"vy"`
	VZ    float64 `csv:"vz"`
	Speed float64 `csv:"speed"`
}

func loadPath(name string) (catrom.Path, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return catrom.Path{}, fmt.Errorf("reading path file: %w", err)
	}
	var pf pathFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return catrom.Path{}, fmt.Errorf("parsing path file: %w", err)
	}
	pts := make(catrom.Points, len(pf.Points))
	for i, p := range pf.Points {
		pts[i] = catrom.Pt(p.X, p.Y, p.Z)
	}
	return catrom.Path{Source: pts, Loop: pf.Loop}, nil
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	pathName := flag.String("path", "", "Path definition YAML file")
	samples := flag.Int("samples", 100, "Number of sample intervals over the whole path")
	output := flag.String("output", "", "Output CSV file (empty = stdout)")
	arclen := flag.Bool("arclen", false, "Also log the total arc length")
	accuracy := flag.Float64("accuracy", 1e-6, "Arc length accuracy")
	flag.Parse()

	if *pathName == "" {
		log.Fatal().Msg("-path is required")
	}

	path, err := loadPath(*pathName)
	if err != nil {
		log.Fatal().Err(err).Msg("loading path")
	}
	if path.Loop {
		log.Warn().Msg("loop flag is set but looping is not evaluated; sampling an open path")
	}
	log.Info().
		Int("points", path.Source.Len()).
		Int("segments", path.Segments()).
		Msg("loaded path")

	rows := make([]sampleRow, 0, *samples+1)
	for i := 0; i <= *samples; i++ {
		t := float64(i) / float64(*samples)
		pos, err := path.Interp(t)
		if err != nil {
			log.Fatal().Err(err).Float64("t", t).Msg("evaluating position")
		}
		vel, err := path.Velocity(t)
		if err != nil {
			log.Fatal().Err(err).Float64("t", t).Msg("evaluating velocity")
		}
		rows = append(rows, sampleRow{
			T: t,
			X: pos.X, Y: pos.Y, Z: pos.Z,
			VX: vel.X, VY: vel.Y, VZ: vel.Z,
			Speed: vel.Hypot(),
		})
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatal().Err(err).Msg("creating output file")
		}
		defer f.Close()
		out = f
	}
	if err := gocsv.Marshal(&rows, out); err != nil {
		log.Fatal().Err(err).Msg("writing samples")
	}

	if *arclen {
		length, err := path.Arclen(*accuracy)
		if err != nil {
			log.Fatal().Err(err).Msg("computing arc length")
		}
		log.Info().Float64("arclen", length).Msg("path length")
	}
}
