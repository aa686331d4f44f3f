package utils

import (
	"bytes"

	"github.com/wcharczuk/go-chart/v2"
)

// RenderRevenueChart draws a bar chart PNG of daily revenue, one bar
// per day label. Labels and values must be the same length.
func RenderRevenueChart(labels []string, values []float64) ([]byte, error) {
	bars := make([]chart.Value, 0, len(labels))
	for i, label := range labels {
		bars = append(bars, chart.Value{Label: label, Value: values[i]})
	}

	var max float64
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	if max <= 0 {
		max = 1
	}

	graph := chart.BarChart{
		Title:    "Revenue (last 7 days)",
		Height:   400,
		Width:    760,
		BarWidth: 60,
		Bars:     bars,
		XAxis: chart.Style{
			TextRotationDegrees: 45,
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: max * 1.1},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
