package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

type functionInfo struct {
	Name    string    `yaml:"name"`
	Dim     int       `yaml:"dim"`
	Minimum []float64 `yaml:"minimum,omitempty"`
}

type gradReport struct {
	Function string    `yaml:"function"`
	X        []float64 `yaml:"x"`
	Value    float64   `yaml:"value"`
	Grad     []float64 `yaml:"grad"`
}

type minimizeReport struct {
	Function   string    `yaml:"function"`
	Optimizer  string    `yaml:"optimizer"`
	Start      []float64 `yaml:"start"`
	X          []float64 `yaml:"x"`
	F          float64   `yaml:"f"`
	GradNorm   float64   `yaml:"grad_norm"`
	Iterations int       `yaml:"iterations"`
	Status     string    `yaml:"status"`
}

// render writes v in the configured output format.
func (a *app) render(v any) error {
	switch a.cfg.Output {
	case "yaml":
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		return enc.Close()
	case "", "text":
		return writeText(a.out, v)
	default:
		return fmt.Errorf("unknown output format %q (want text or yaml)", a.cfg.Output)
	}
}

func writeText(w io.Writer, v any) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	switch r := v.(type) {
	case []functionInfo:
		fmt.Fprintln(tw, "NAME\tDIM\tMINIMUM")
		for _, f := range r {
			dim := "any"
			if f.Dim != 0 {
				dim = fmt.Sprint(f.Dim)
			}
			minimum := "none"
			if f.Minimum != nil {
				minimum = fmt.Sprint(f.Minimum)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", f.Name, dim, minimum)
		}
	case gradReport:
		fmt.Fprintf(tw, "function:\t%s\n", r.Function)
		fmt.Fprintf(tw, "x:\t%v\n", r.X)
		fmt.Fprintf(tw, "value:\t%g\n", r.Value)
		fmt.Fprintf(tw, "grad:\t%v\n", r.Grad)
	case minimizeReport:
		fmt.Fprintf(tw, "function:\t%s\n", r.Function)
		fmt.Fprintf(tw, "optimizer:\t%s\n", r.Optimizer)
		fmt.Fprintf(tw, "start:\t%v\n", r.Start)
		fmt.Fprintf(tw, "x:\t%v\n", r.X)
		fmt.Fprintf(tw, "f:\t%g\n", r.F)
		fmt.Fprintf(tw, "|grad|:\t%g\n", r.GradNorm)
		fmt.Fprintf(tw, "iterations:\t%d\n", r.Iterations)
		fmt.Fprintf(tw, "status:\t%s\n", r.Status)
	default:
		return fmt.Errorf("no text rendering for %T", v)
	}
	return tw.Flush()
}
