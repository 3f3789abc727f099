// Package seeddata bundles the name lists and generation parameters used to
// populate a smallville database. All files live under data/ and are
// embedded into the binary, so a built CLI needs no working directory setup.
package seeddata

import (
	"embed"
	"fmt"
	"strings"

	"github.com/edelooff/smallville/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed data
var dataFS embed.FS

// Gauss holds the mean and standard deviation of a normal distribution.
type Gauss struct {
	Mean   float64
	StdDev float64
}

// UnmarshalYAML reads a Gauss from a [mean, stddev] sequence.
func (g *Gauss) UnmarshalYAML(value *yaml.Node) error {
	var pair [2]float64
	if err := value.Decode(&pair); err != nil {
		return fmt.Errorf("gauss parameters must be a [mean, stddev] pair: %w", err)
	}
	g.Mean, g.StdDev = pair[0], pair[1]
	return nil
}

// NameParts holds the building blocks for generated company names.
type NameParts struct {
	Prefix    []string `yaml:"prefix"`
	Suffix    []string `yaml:"suffix"`
	Finalizer []string `yaml:"finalizer"`
}

// BusinessParams parameterizes company generation.
type BusinessParams struct {
	Industries     []string                 `yaml:"industries"`
	Names          NameParts                `yaml:"names"`
	SalaryBands    map[model.SizeCode]Gauss `yaml:"salary_bands"`
	HiringSlowdown map[model.SizeCode]Gauss `yaml:"hiring_slowdown"`
}

// CityParams parameterizes city population and company density.
type CityParams struct {
	PopulationRanges    map[model.SizeCode]Gauss `yaml:"population_ranges"`
	CompanyDensityRange Gauss                    `yaml:"company_density_range"`
}

// TransportParams parameterizes the transport network.
type TransportParams struct {
	MaxHopDistance int    `yaml:"max_hop_distance"`
	DistanceRange  [2]int `yaml:"distance_range"`
}

// CityEntry is one line from the bundled city list.
type CityEntry struct {
	Name string
	Size model.SizeCode
}

// Entries returns the trimmed, non-empty, non-comment lines from a named
// seed file (data/<name>.txt).
func Entries(name string) ([]string, error) {
	raw, err := dataFS.ReadFile("data/" + name + ".txt")
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", name, err)
	}
	var entries []string
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	return entries, nil
}

// Business returns the company generation parameters. Suffix words double
// as finalizers, so the finalizer list is extended with the suffix list.
func Business() (*BusinessParams, error) {
	var params BusinessParams
	if err := loadYAML("business", &params); err != nil {
		return nil, err
	}
	params.Names.Finalizer = append(params.Names.Finalizer, params.Names.Suffix...)
	return &params, nil
}

// CityGeneration returns the city generation parameters.
func CityGeneration() (*CityParams, error) {
	var params CityParams
	if err := loadYAML("cities", &params); err != nil {
		return nil, err
	}
	return &params, nil
}

// Transport returns the transport network parameters.
func Transport() (*TransportParams, error) {
	var params TransportParams
	if err := loadYAML("transport", &params); err != nil {
		return nil, err
	}
	return &params, nil
}

// Cities returns the bundled city list, parsed from "name; size" lines.
func Cities() ([]CityEntry, error) {
	lines, err := Entries("cities")
	if err != nil {
		return nil, err
	}
	cities := make([]CityEntry, 0, len(lines))
	for _, line := range lines {
		name, size, found := strings.Cut(line, ";")
		if !found {
			return nil, fmt.Errorf("malformed city entry: %q", line)
		}
		cities = append(cities, CityEntry{
			Name: strings.TrimSpace(name),
			Size: model.SizeCode(strings.TrimSpace(size)),
		})
	}
	return cities, nil
}

// ShuffleInfix pulls a surname's infix to the front of the name, from the
// end: "Berg, van den" becomes "van den Berg".
func ShuffleInfix(name string) string {
	parts := strings.Split(name, ", ")
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, " ")
}

func loadYAML(name string, target interface{}) error {
	raw, err := dataFS.ReadFile("data/" + name + ".yaml")
	if err != nil {
		return fmt.Errorf("failed to read seed file %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("failed to parse seed file %s: %w", name, err)
	}
	return nil
}
