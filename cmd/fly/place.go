// ABOUTME: "fly place" computes a panel position for given anchor and panel geometry
// ABOUTME: Prints the coordinates and the modifier classes the panel would receive

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	ilog "github.com/mauromedda/fly-go/internal/log"
	"github.com/mauromedda/fly-go/pkg/fly/geom"
	"github.com/mauromedda/fly-go/pkg/fly/place"
)

func (c *CLI) placeCommand() *cobra.Command {
	var (
		anchor    string
		panel     string
		scroll    string
		position  string
		arrowSize float64
		base      string
	)

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Compute where a panel is placed relative to an anchor",
		Example: `  fly place --anchor 100,50,80,20 --panel 120,40 --position "top left"
  fly place --anchor 10,10,6,1 --panel 12,3 --arrow-size 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseFloats(anchor, 4)
			if err != nil {
				return fmt.Errorf("--anchor: %w", err)
			}
			p, err := parseFloats(panel, 2)
			if err != nil {
				return fmt.Errorf("--panel: %w", err)
			}
			s, err := parseFloats(scroll, 2)
			if err != nil {
				return fmt.Errorf("--scroll: %w", err)
			}
			spec, err := place.ParseStrict(position)
			if err != nil {
				ilog.Warn("%v; using %s", err, spec)
			}
			spec.ArrowSize = arrowSize

			pt := place.Compute(
				geom.Rect{Top: a[0], Left: a[1], Width: a[2], Height: a[3]},
				geom.Rect{Width: p[0], Height: p[1]},
				geom.Offset{Top: s[0], Left: s[1]},
				spec,
			)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "placement: %s\n", spec.Normalize())
			fmt.Fprintf(out, "top: %s\nleft: %s\n", formatFloat(pt.Top), formatFloat(pt.Left))
			fmt.Fprintf(out, "classes: %s\n", strings.Join(place.ModClasses(base, spec), " "))
			return nil
		},
	}

	cmd.Flags().StringVar(&anchor, "anchor", "", "anchor box: top,left,width,height (viewport-relative)")
	cmd.Flags().StringVar(&panel, "panel", "", "panel size: width,height")
	cmd.Flags().StringVar(&scroll, "scroll", "0,0", "viewport scroll: top,left")
	cmd.Flags().StringVarP(&position, "position", "p", place.Default.String(), `placement "<side> <arrow>"`)
	cmd.Flags().Float64Var(&arrowSize, "arrow-size", 10, "arrow size")
	cmd.Flags().StringVar(&base, "base-class", "fly", "base class used for modifier classes")
	_ = cmd.MarkFlagRequired("anchor")
	_ = cmd.MarkFlagRequired("panel")

	return cmd
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated numbers, got %q", n, s)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", p, err)
		}
		out[i] = v
	}
	return out, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
