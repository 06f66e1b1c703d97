// Package charts renders the dashboard charts as PNG images.
package charts

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"budget_bloom/internal/domain"
	"budget_bloom/internal/insights"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("no data to chart")

// Category colours, same order as domain.Categories
var palette = []drawing.Color{
	drawing.ColorFromHex("3B82F6"),
	drawing.ColorFromHex("F59E0B"),
	drawing.ColorFromHex("10B981"),
	drawing.ColorFromHex("EF4444"),
	drawing.ColorFromHex("8B5CF6"),
	drawing.ColorFromHex("EC4899"),
}

// CategoryPie draws spend by category.
func CategoryPie(totals []domain.CategoryTotal) ([]byte, error) {
	var sum float64
	for _, t := range totals {
		sum += t.Total
	}
	if sum <= 0 {
		return nil, ErrNoData
	}

	values := make([]chart.Value, 0, len(totals))
	for i, t := range totals {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %.2f (%.0f%%)", t.Category, t.Total, t.Total/sum*100),
			Value: t.Total,
			Style: chart.Style{FillColor: palette[i%len(palette)]},
		})
	}

	pie := chart.PieChart{
		Width:  512,
		Height: 512,
		Values: values,
		Background: chart.Style{
			FillColor: chart.ColorWhite,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render category chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// DailyBars draws one bar per day.
func DailyBars(days []insights.DailyTotal) ([]byte, error) {
	var hasSpend bool
	for _, d := range days {
		if d.Amount > 0 {
			hasSpend = true
			break
		}
	}
	if !hasSpend {
		return nil, ErrNoData
	}

	bars := make([]chart.Value, 0, len(days))
	for _, d := range days {
		label := d.Date
		if t, err := time.Parse(time.DateOnly, d.Date); err == nil {
			label = t.Format("2")
		}
		bars = append(bars, chart.Value{
			Label: label,
			Value: d.Amount,
			Style: chart.Style{
				FillColor:   palette[0],
				StrokeColor: palette[0],
			},
		})
	}

	graph := chart.BarChart{
		Title:      "Daily Spend",
		Width:      1000,
		Height:     400,
		BarWidth:   20,
		BarSpacing: 8,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
			FillColor: chart.ColorWhite,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.0f", v.(float64))
			},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render daily chart: %w", err)
	}
	return buffer.Bytes(), nil
}
