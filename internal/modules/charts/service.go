// Package charts renders the dashboard charts as SVG and converts series to chart data points.
package charts

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/aristath/coin50/internal/modules/display"
	"github.com/aristath/coin50/internal/modules/index"
	"github.com/aristath/coin50/internal/modules/series"
	"github.com/aristath/coin50/pkg/formulas"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNoData is returned when a chart has nothing to draw
var ErrNoData = errors.New("not enough data to render chart")

const (
	chartWidth  = 900
	chartHeight = 420

	// DefaultSMAPeriod is the window of the moving-average overlay
	DefaultSMAPeriod = 20
)

// ChartDataPoint represents a single point on a chart
type ChartDataPoint struct {
	Time  string  `json:"time"`  // YYYY-MM-DD format
	Value float64 `json:"value"` // Index level
}

// Service renders charts
type Service struct {
	svgCache *cache.Cache // Rendered bar charts keyed by theme and constituent set
	log      zerolog.Logger
}

// NewService creates a new charts service
func NewService(log zerolog.Logger) *Service {
	return &Service{
		svgCache: cache.New(cache.NoExpiration, 0),
		log:      log.With().Str("service", "charts").Logger(),
	}
}

// Points converts a series into chart data points
func Points(s series.Series) []ChartDataPoint {
	points := make([]ChartDataPoint, len(s.Points))
	for i, p := range s.Points {
		points[i] = ChartDataPoint{
			Time:  p.Date.Format("2006-01-02"),
			Value: p.Value,
		}
	}
	return points
}

// WeightsBarChart renders constituent weights as an SVG bar chart.
// Output is cached per theme and constituent set; the table is static.
func (s *Service) WeightsBarChart(constituents []index.Constituent, theme display.Theme) ([]byte, error) {
	if len(constituents) == 0 {
		return nil, ErrNoData
	}

	key := weightsCacheKey(constituents, theme)
	if cached, ok := s.svgCache.Get(key); ok {
		return bytes.Clone(cached.([]byte)), nil
	}

	palette := display.PaletteFor(theme)
	bars := make([]chart.Value, len(constituents))
	maxWeight := 0.0
	for i, c := range constituents {
		w := c.Weight.InexactFloat64()
		if w > maxWeight {
			maxWeight = w
		}
		bars[i] = chart.Value{
			Label: c.Name,
			Value: w,
			Style: chart.Style{
				FillColor:   color(palette.Accent),
				StrokeColor: color(palette.Accent),
			},
		}
	}
	if maxWeight <= 0 {
		return nil, ErrNoData
	}

	graph := chart.BarChart{
		Title:      fmt.Sprintf("Top %d %s Constituents by Weight", len(constituents), index.Name),
		TitleStyle: chart.Style{FontColor: color(palette.Text), FontSize: 14},
		Width:      chartWidth,
		Height:     chartHeight,
		BarWidth:   60,
		Background: chart.Style{
			FillColor: color(palette.Background),
			Padding:   chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		Canvas: chart.Style{FillColor: color(palette.Background)},
		XAxis: chart.Style{
			FontColor: color(palette.Text),
			FontSize:  8,
		},
		YAxis: chart.YAxis{
			Style:          chart.Style{FontColor: color(palette.Text)},
			Range:          &chart.ContinuousRange{Min: 0, Max: maxWeight * 1.1},
			ValueFormatter: percentFormatter,
		},
		UseBaseValue: true,
		BaseValue:    0,
		Bars:         bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render weights chart: %w", err)
	}

	out := buf.Bytes()
	s.svgCache.Set(key, bytes.Clone(out), cache.NoExpiration)
	s.log.Debug().Str("theme", theme.String()).Int("bars", len(bars)).Msg("Rendered weights chart")

	return out, nil
}

// TrendLineChart renders a series as an SVG line chart with point markers.
// smaPeriod > 0 adds a moving-average overlay when the series is long enough.
func (s *Service) TrendLineChart(sr series.Series, smaPeriod int, theme display.Theme) ([]byte, error) {
	if len(sr.Points) < 2 {
		return nil, ErrNoData
	}

	palette := display.PaletteFor(theme)
	dates := sr.Dates()
	values := sr.Values()

	graph := chart.Chart{
		Title:      fmt.Sprintf("%s Index Trend (Mock Data)", index.Name),
		TitleStyle: chart.Style{FontColor: color(palette.Text), FontSize: 14},
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{
			FillColor: color(palette.Background),
			Padding:   chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		Canvas: chart.Style{FillColor: color(palette.Background)},
		XAxis: chart.XAxis{
			Name:           "Date",
			NameStyle:      chart.Style{FontColor: color(palette.Text)},
			Style:          chart.Style{FontColor: color(palette.Text)},
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02"),
		},
		YAxis: chart.YAxis{
			Name:           "Index Value",
			NameStyle:      chart.Style{FontColor: color(palette.Text)},
			Style:          chart.Style{FontColor: color(palette.Text)},
			GridMajorStyle: chart.Style{StrokeColor: color(palette.Grid), StrokeWidth: 1},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    index.Name,
				XValues: dates,
				YValues: values,
				Style: chart.Style{
					StrokeColor: color(palette.Accent),
					StrokeWidth: 2,
					DotColor:    color(palette.Accent),
					DotWidth:    2.5,
				},
			},
		},
	}

	if overlay, ok := smaOverlay(dates, values, smaPeriod, palette); ok {
		graph.Series = append(graph.Series, overlay)
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph, chart.Style{
		FillColor: color(palette.Surface),
		FontColor: color(palette.Text),
	})}

	var buf bytes.Buffer
	if err := graph.Render(chart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render trend chart: %w", err)
	}

	s.log.Debug().
		Str("render_id", sr.RenderID.String()).
		Str("theme", theme.String()).
		Int("points", len(values)).
		Msg("Rendered trend chart")

	return buf.Bytes(), nil
}

// smaOverlay builds the moving-average series, skipping the warm-up window
func smaOverlay(dates []time.Time, values []float64, period int, palette display.Palette) (chart.TimeSeries, bool) {
	if period < 1 {
		return chart.TimeSeries{}, false
	}
	sma := formulas.SMASeries(values, period)
	if len(sma) < period+1 {
		return chart.TimeSeries{}, false
	}

	return chart.TimeSeries{
		Name:    fmt.Sprintf("SMA(%d)", period),
		XValues: dates[period-1:],
		YValues: sma[period-1:],
		Style: chart.Style{
			StrokeColor:     color(palette.Positive),
			StrokeWidth:     1.5,
			StrokeDashArray: []float64{5, 3},
		},
	}, true
}

func weightsCacheKey(constituents []index.Constituent, theme display.Theme) string {
	var b bytes.Buffer
	b.WriteString("weights:")
	b.WriteString(theme.String())
	for _, c := range constituents {
		b.WriteByte('|')
		b.WriteString(c.ID)
		b.WriteByte('=')
		b.WriteString(c.Weight.String())
	}
	return b.String()
}

func percentFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f%%", f)
	}
	return ""
}

func color(hex string) drawing.Color {
	return drawing.ColorFromHex(hex)
}
