package leaderboardservice

import (
	"bytes"
	"fmt"

	leaderboarddomain "github.com/Black-And-White-Club/clip-arena/app/modules/leaderboard/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartPalette holds the colors used by rendered charts.
type ChartPalette struct {
	Background drawing.Color
	Bar        drawing.Color
	TextColor  drawing.Color
}

var DefaultPalette = ChartPalette{
	Background: drawing.ColorFromHex("101714"),
	Bar:        drawing.ColorFromHex("c9a227"),
	TextColor:  drawing.ColorFromHex("e8e6df"),
}

const maxLabelLength = 12

// GenerateLeaderboardChart produces a PNG bar chart of total votes per user,
// in leaderboard order.
func GenerateLeaderboardChart(entries []leaderboarddomain.Entry, palette ChartPalette) ([]byte, error) {
	if len(entries) == 0 {
		return renderNoDataPlaceholder(palette)
	}

	bars := make([]chart.Value, len(entries))
	top := 1.0
	for i, e := range entries {
		bars[i] = chart.Value{
			Label: barLabel(e),
			Value: float64(e.TotalVotesReceived),
			Style: chart.Style{
				FillColor:   palette.Bar,
				StrokeColor: palette.Bar,
				StrokeWidth: 1,
			},
		}
		top = max(top, float64(e.TotalVotesReceived))
	}

	graph := chart.BarChart{
		Title:    "Votes Received",
		Width:    max(400, 80*len(bars)),
		Height:   400,
		BarWidth: 48,
		TitleStyle: chart.Style{
			FontColor: palette.TextColor,
		},
		Background: chart.Style{
			FillColor: palette.Background,
			Padding:   chart.Box{Top: 40},
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		XAxis: chart.Style{
			FontColor: palette.TextColor,
		},
		YAxis: chart.YAxis{
			Style: chart.Style{
				FontColor: palette.TextColor,
			},
			// A fixed floor keeps all-zero boards renderable.
			Range: &chart.ContinuousRange{Min: 0, Max: top},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render leaderboard chart: %w", err)
	}
	return buffer.Bytes(), nil
}

func barLabel(e leaderboarddomain.Entry) string {
	name := e.DisplayName
	if name == "" {
		name = e.UserID.String()[:8]
	}
	if r := []rune(name); len(r) > maxLabelLength {
		name = string(r[:maxLabelLength-3]) + "..."
	}
	return fmt.Sprintf("#%d %s", e.Rank, name)
}

// chart.Chart refuses to render without a series, so the empty state is
// drawn straight onto a PNG renderer.
func renderNoDataPlaceholder(palette ChartPalette) ([]byte, error) {
	const (
		width  = 400
		height = 200
		msg    = "No leaderboard data"
	)

	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, err
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, err
	}

	chart.Draw.Box(r, chart.Box{Right: width, Bottom: height}, chart.Style{
		FillColor:   palette.Background,
		StrokeColor: palette.Background,
		StrokeWidth: 1,
	})

	r.SetFont(font)
	r.SetFontColor(palette.TextColor)
	r.SetFontSize(12.0)
	tb := r.MeasureText(msg)
	r.Text(msg, (width-tb.Width())/2, (height+tb.Height())/2)

	buffer := bytes.NewBuffer([]byte{})
	if err := r.Save(buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
