// Package config turns command-line flags, the environment and YAML files
// into the values the harness runs with.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"hetvrp/internal/customer"
	"hetvrp/internal/geo"
)

var (
	ErrInvalidBool   = errors.New("config: invalid boolean value")
	ErrInvalidOption = errors.New("config: invalid option")
)

// ParseBool accepts true, false, 1 and 0 in any letter case.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("%w %q", ErrInvalidBool, s)
}

// Toggles enables the search's operator families.
type Toggles struct {
	CI, II, RD, WD, CD, GR, RR bool
}

// Search holds the tuning knobs of the adaptive search. Nothing in this
// module reads them yet beyond echoing them back.
type Search struct {
	Weights [4]int
	RF      float64 // reaction factor
	DOD     float64 // fraction of customers destroyed per iteration
	W       float64 // temperature control
	DParam  float64 // determinism
	Toggles Toggles
}

// Options is the parsed command line.
type Options struct {
	Instance string
	Seed     uint64
	Search   Search

	Fleet      string
	Customers  int
	Box        float64
	Center     geo.GeoVec2
	MinDemand  int
	MaxDemand  int
	InstanceID string
	Save       bool

	SelfCheck   bool
	MetricsAddr string
	Debug       bool
	Version     bool
}

// Defaults is the research option table plus
// a small generated instance around Knoxville, TN.
func Defaults() Options {
	return Options{
		Seed: customer.AutoSeed,
		Search: Search{
			Weights: [4]int{24, 22, 20, 4},
			RF:      .16,
			DOD:     .41,
			W:       2.04,
			DParam:  5,
			Toggles: Toggles{true, true, true, true, true, true, true},
		},
		Customers: 10,
		Box:       20,
		Center:    geo.GeoVec2{Latitude: 35.9606, Longitude: -83.9207},
		MinDemand: 1,
		MaxDemand: 6,
	}
}

// Parse reads args (without the program name). Usage goes to out. A -h
// request returns flag.ErrHelp.
func Parse(args []string, out io.Writer) (*Options, error) {
	o := Defaults()
	fs := flag.NewFlagSet("vrp", flag.ContinueOnError)
	fs.SetOutput(out)

	fs.StringVar(&o.Instance, "instance", "", "instance file (YAML)")
	fs.Uint64Var(&o.Seed, "seed", o.Seed, "random number generator seed (default: from the clock)")
	for i := range o.Search.Weights {
		fs.IntVar(&o.Search.Weights[i], fmt.Sprintf("weight%d", i+1), o.Search.Weights[i], fmt.Sprintf("operator weight %d", i+1))
	}
	fs.Float64Var(&o.Search.RF, "rf", o.Search.RF, "reaction factor")
	fs.Float64Var(&o.Search.DOD, "dod", o.Search.DOD, "fraction of customers removed")
	fs.Float64Var(&o.Search.W, "W", o.Search.W, "temperature control parameter")
	fs.Float64Var(&o.Search.DParam, "d_param", o.Search.DParam, "determinism parameter")

	toggles := []struct {
		name string
		dst  *bool
	}{
		{"CI", &o.Search.Toggles.CI},
		{"II", &o.Search.Toggles.II},
		{"RD", &o.Search.Toggles.RD},
		{"WD", &o.Search.Toggles.WD},
		{"CD", &o.Search.Toggles.CD},
		{"GR", &o.Search.Toggles.GR},
		{"RR", &o.Search.Toggles.RR},
	}
	raw := make([]string, len(toggles))
	for i, tg := range toggles {
		fs.StringVar(&raw[i], tg.name, "true", "enable (true/false)")
	}

	fs.StringVar(&o.Fleet, "fleet", "", "fleet file (YAML); placeholder fleet when empty")
	fs.IntVar(&o.Customers, "customers", o.Customers, "customers to generate when no instance is given")
	fs.Float64Var(&o.Box, "box", o.Box, "side of the generation box in miles")
	fs.Float64Var(&o.Center.Latitude, "center-lat", o.Center.Latitude, "generation center latitude")
	fs.Float64Var(&o.Center.Longitude, "center-lon", o.Center.Longitude, "generation center longitude")
	fs.IntVar(&o.MinDemand, "min-demand", o.MinDemand, "smallest generated demand")
	fs.IntVar(&o.MaxDemand, "max-demand", o.MaxDemand, "largest generated demand")
	fs.StringVar(&o.InstanceID, "instance-id", "", "load the instance with this id from the store")
	fs.BoolVar(&o.Save, "save", false, "persist the instance to the store")
	fs.BoolVar(&o.SelfCheck, "selfcheck", false, "run the route cost audit")
	fs.StringVar(&o.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	fs.BoolVar(&o.Debug, "debug", false, "development logging")
	fs.BoolVar(&o.Version, "version", false, "print the version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q: %w", fs.Arg(0), ErrInvalidOption)
	}
	for i, tg := range toggles {
		v, err := ParseBool(raw[i])
		if err != nil {
			return nil, fmt.Errorf("-%s: %w", tg.name, err)
		}
		*tg.dst = v
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return &o, nil
}

func (o *Options) validate() error {
	switch {
	case o.Instance != "" && o.InstanceID != "":
		return fmt.Errorf("-instance and -instance-id are exclusive: %w", ErrInvalidOption)
	case o.Customers < 1:
		return fmt.Errorf("-customers %d: %w", o.Customers, ErrInvalidOption)
	case o.Box <= 0:
		return fmt.Errorf("-box %g: %w", o.Box, ErrInvalidOption)
	case o.MinDemand > o.MaxDemand:
		return fmt.Errorf("-min-demand %d above -max-demand %d: %w", o.MinDemand, o.MaxDemand, ErrInvalidOption)
	case o.Search.DOD < 0 || o.Search.DOD > 1:
		return fmt.Errorf("-dod %g: %w", o.Search.DOD, ErrInvalidOption)
	}
	return nil
}
