package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/sirupsen/logrus"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/pickviz/lattice"
	"github.com/pickviz/lattice/dbg"
	"github.com/pickviz/lattice/geom"
)

// Demo of the lattice statistics engine. Input on stdin should be newline
// separated vertices in the form "x y", with each polygon separated by an
// extra newline. Each polygon's snapshot is printed as JSON; pass --additive
// to treat every polygon as a quadrilateral and split it along its v0-v2
// diagonal. Polygons should be simple; that requirement is not validated.

var (
	additive = kingpin.Flag("additive", "Split each quadrilateral into two triangles along the v0-v2 diagonal.").Bool()
	drawDir  = kingpin.Flag("draw", "Directory to write a PNG rendering of each polygon into.").String()
	scale    = kingpin.Flag("scale", "Pixels per lattice unit when drawing.").Default("32").Float64()
	cat      = kingpin.Flag("cat", "Show renderings inline in the terminal (requires --draw).").Bool()
)

var log = logrus.New()

func main() {
	kingpin.Parse()

	polygons := readPolygons(os.Stdin)
	log.Infof("Read %d polygons", len(polygons))

	for i, pairs := range polygons {
		name := dbg.Name(i)
		result, err := snapshotJSON(pairs)
		if err != nil {
			log.WithError(err).Errorf("Skipping %s", name)
			continue
		}
		fmt.Printf("%s:\n%s\n", name, result)

		if *drawDir != "" {
			path := filepath.Join(*drawDir, name+".png")
			if err := drawPolygon(pairs, path); err != nil {
				log.WithError(err).Errorf("Could not draw %s", name)
				continue
			}
			if *cat {
				imgcat.CatFile(path, os.Stdout)
			}
		}
	}
}

func snapshotJSON(pairs [][2]float64) ([]byte, error) {
	if *additive {
		snap, err := lattice.ComputeAdditiveSnapshot(pairs)
		if err != nil {
			return nil, err
		}
		return json.MarshalIndent(snap, "", "  ")
	}
	snap, err := lattice.ComputeSnapshot(pairs)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(snap, "", "  ")
}

func drawPolygon(pairs [][2]float64, path string) error {
	poly, err := geom.NewPolygonFromPairs(pairs)
	if err != nil {
		return err
	}
	return geom.DrawSnapshot(poly, poly.Snapshot(), *scale, path)
}

func readPolygons(in *os.File) [][][2]float64 {
	polygons := [][][2]float64{}
	scanner := bufio.NewScanner(in)
	points := [][2]float64{}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// An empty line after any points is the end of the current polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, points)
				points = [][2]float64{}
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			log.WithError(err).Fatalf("Bad vertex line %q", line)
		}
		points = append(points, point)
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, points)
	}
	return polygons
}

func parsePoint(line string) ([2]float64, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return [2]float64{}, fmt.Errorf("expected \"x y\", got %d fields", len(parts))
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return [2]float64{}, err
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return [2]float64{}, err
	}
	return [2]float64{x, y}, nil
}
