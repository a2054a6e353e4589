// Package bench measures the engine end to end: state-space exploration and
// bisimulation refinement over generated or file-based specifications. It
// exists because the checker's cost is quadratic in state pairs on top of
// the combinatorial growth of parallel composition; plotting the numbers is
// left to external tooling.
package bench

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Case is one benchmark configuration. Either File points at a .ccs
// specification, or States/Actions/Transitions parameterize a generated
// one.
type Case struct {
	Name        string `yaml:"name"`
	File        string `yaml:"file,omitempty"`
	States      int    `yaml:"states,omitempty"`
	Actions     int    `yaml:"actions,omitempty"`
	Transitions int    `yaml:"transitions,omitempty"`
	Trials      int    `yaml:"trials,omitempty"`
}

// Suite is a list of cases sharing one generator seed, decoded from YAML.
type Suite struct {
	Seed  int64  `yaml:"seed"`
	Cases []Case `yaml:"cases"`
}

// LoadSuite decodes and sanity-checks a suite. Trials defaults to 3.
func LoadSuite(r io.Reader) (*Suite, error) {
	var s Suite
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding suite: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite defines no cases")
	}
	for i := range s.Cases {
		c := &s.Cases[i]
		if c.Name == "" {
			return nil, fmt.Errorf("case %d has no name", i)
		}
		if c.File == "" && c.States == 0 {
			return nil, fmt.Errorf("case %q needs a file or generator sizes", c.Name)
		}
		if c.Trials <= 0 {
			c.Trials = 3
		}
	}
	return &s, nil
}
