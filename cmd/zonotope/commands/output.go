package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/zonotope/halfspace"
)

// volumeReport is the printable result of `zonotope volume`.
type volumeReport struct {
	Dimension  int     `json:"dimension" yaml:"dimension"`
	Generators int     `json:"generators" yaml:"generators"`
	Volume     string  `json:"volume" yaml:"volume"`
	Approx     float64 `json:"approx" yaml:"approx"`
}

// facetReport is one facet Normal·x + Offset >= 0.
type facetReport struct {
	Offset      string   `json:"offset" yaml:"offset"`
	Normal      []string `json:"normal" yaml:"normal,flow"`
	Combination []int    `json:"combination,omitempty" yaml:"combination,flow,omitempty"`
}

// halfspacesReport is the printable result of `zonotope halfspaces`.
type halfspacesReport struct {
	Dimension  int           `json:"dimension" yaml:"dimension"`
	Generators int           `json:"generators" yaml:"generators"`
	Facets     []facetReport `json:"facets" yaml:"facets"`
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))
)

func newVolumeReport(d, n int, v *big.Rat) volumeReport {
	approx, _ := v.Float64()

	return volumeReport{Dimension: d, Generators: n, Volume: v.RatString(), Approx: approx}
}

func newHalfspacesReport(d, n int, hs []halfspace.Hyperplane[*big.Int]) halfspacesReport {
	r := halfspacesReport{Dimension: d, Generators: n, Facets: make([]facetReport, len(hs))}
	for i, h := range hs {
		normal := make([]string, len(h.Normal))
		for j, x := range h.Normal {
			normal[j] = x.String()
		}
		r.Facets[i] = facetReport{Offset: h.Offset.String(), Normal: normal, Combination: h.Combination}
	}

	return r
}

// render writes v in the requested format; table is the human layout
// produced by the matching *Table function.
func render(w io.Writer, format string, v any, asTable func() string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		_, err := fmt.Fprintln(w, asTable())
		return err
	}
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func (r volumeReport) Table() string {
	return newTable("dimension", "generators", "volume", "≈").
		Row(strconv.Itoa(r.Dimension), strconv.Itoa(r.Generators), r.Volume, strconv.FormatFloat(r.Approx, 'g', 12, 64)).
		String()
}

func (r halfspacesReport) Table() string {
	withComb := len(r.Facets) > 0 && r.Facets[0].Combination != nil
	headers := []string{"#", "normal", "offset"}
	if withComb {
		headers = append(headers, "combination")
	}
	t := newTable(headers...)
	for i, f := range r.Facets {
		row := []string{strconv.Itoa(i), "(" + strings.Join(f.Normal, ", ") + ")", f.Offset}
		if withComb {
			row = append(row, fmt.Sprint(f.Combination))
		}
		t.Row(row...)
	}

	return t.String() + "\n" + fmt.Sprintf("%d facets in dimension %d from %d generators (normal·x + offset >= 0)",
		len(r.Facets), r.Dimension, r.Generators)
}
