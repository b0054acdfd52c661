// SPDX-License-Identifier: MIT
// Package: kmeanslab/render
//
// html.go — interactive scatter chart of one frame with go-echarts.

package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/kmeanslab/geom"
)

// HTML writes a self-contained scatter chart page: one series per cluster,
// one for unassigned points (if any) and one for the centroids.
func HTML(w io.Writer, title string, points []geom.Point, centroids []geom.Centroid) error {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: pointer(true)}),
		charts.WithLegendOpts(opts.Legend{Show: pointer(true), Top: "bottom"}),
	)

	palette := Palette(len(centroids))
	clusters := make([][]opts.ScatterData, len(centroids))
	var unassigned []opts.ScatterData
	for _, p := range points {
		d := opts.ScatterData{Value: []interface{}{p.X, p.Y}}
		if p.Assigned() && p.Cluster < len(clusters) {
			clusters[p.Cluster] = append(clusters[p.Cluster], d)
		} else {
			unassigned = append(unassigned, d)
		}
	}

	for i, data := range clusters {
		scatter.AddSeries(fmt.Sprintf("Cluster %d", i), data,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: hex(palette[i])}),
			charts.WithLabelOpts(opts.Label{Show: pointer(false)}),
		)
	}
	if len(unassigned) > 0 {
		scatter.AddSeries("Unassigned", unassigned,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "#999999"}),
		)
	}

	marks := make([]opts.ScatterData, len(centroids))
	for i, c := range centroids {
		marks[i] = opts.ScatterData{
			Value:      []interface{}{c.X, c.Y},
			Symbol:     "diamond",
			SymbolSize: 16,
		}
	}
	scatter.AddSeries("Centroids", marks,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "#000000"}),
	)

	return scatter.Render(w)
}

func pointer(b bool) *bool {
	return &b
}
