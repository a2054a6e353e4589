package bench

import (
	"encoding/csv"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Measurement aggregates the trials of one case under one algorithm.
// Durations are in seconds.
type Measurement struct {
	Case        string  `yaml:"case"`
	Algorithm   string  `yaml:"algorithm"`
	States      int     `yaml:"states"`
	Edges       int     `yaml:"edges"`
	Pairs       int     `yaml:"pairs"`
	Trials      int     `yaml:"trials"`
	ExploreMean float64 `yaml:"explore_mean_s"`
	ExploreStd  float64 `yaml:"explore_std_s"`
	CheckMean   float64 `yaml:"check_mean_s"`
	CheckStd    float64 `yaml:"check_std_s"`
}

type Report struct {
	Measurements []Measurement `yaml:"measurements"`
}

func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(r)
}

// WriteCSV emits one row per measurement, header first, for external
// plotting.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := []string{
		"case", "algorithm", "states", "edges", "pairs", "trials",
		"explore_mean_s", "explore_std_s", "check_mean_s", "check_std_s",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, m := range r.Measurements {
		row := []string{
			m.Case,
			m.Algorithm,
			strconv.Itoa(m.States),
			strconv.Itoa(m.Edges),
			strconv.Itoa(m.Pairs),
			strconv.Itoa(m.Trials),
			strconv.FormatFloat(m.ExploreMean, 'g', -1, 64),
			strconv.FormatFloat(m.ExploreStd, 'g', -1, 64),
			strconv.FormatFloat(m.CheckMean, 'g', -1, 64),
			strconv.FormatFloat(m.CheckStd, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
