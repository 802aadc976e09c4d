package server

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aristath/coin50/internal/di"
	"github.com/aristath/coin50/internal/modules/charts"
	"github.com/aristath/coin50/internal/modules/chatbot"
	"github.com/aristath/coin50/internal/modules/display"
	"github.com/aristath/coin50/internal/modules/index"
	"github.com/aristath/coin50/internal/modules/insights"
	"github.com/aristath/coin50/internal/modules/quiz"
	"github.com/aristath/coin50/internal/utils"
	"github.com/aristath/coin50/pkg/embedded"
	"github.com/rs/zerolog"
)

// ContactURL is the Coinbase index page linked from the contact tab
const ContactURL = "https://www.coinbase.com/prime/indexes"

// Dashboard tabs, in display order
const (
	TabOverview = "overview"
	TabCharts   = "charts"
	TabChatbot  = "chatbot"
	TabInsights = "insights"
	TabContact  = "contact"
)

var tabs = []struct {
	ID    string
	Label string
}{
	{TabOverview, "Overview"},
	{TabCharts, "Charts"},
	{TabChatbot, "Chatbot"},
	{TabInsights, "Prediction and Insights"},
	{TabContact, "Contact"},
}

// ParseTab returns a known tab id, defaulting to the overview
func ParseTab(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range tabs {
		if t.ID == s {
			return s
		}
	}
	return TabOverview
}

type tabLink struct {
	Label  string
	URL    string
	Active bool
}

type pageData struct {
	Theme     display.Theme
	Palette   display.Palette
	LightURL  string
	DarkURL   string
	Tabs      []tabLink
	ActiveTab string

	IndexName    string
	Constituents []index.Constituent
	Methodology  []string
	WeightsChart template.HTML
	Fact         string

	Question          string
	Answer            string
	Prompt            string
	Completion        *chatbot.Completion
	CompletionEnabled bool
	Quiz              quiz.Question
	QuizAnswer        string
	QuizResult        *quiz.Result

	TrendChart template.HTML
	Insights   insights.Insights
	RenderID   string

	ContactURL string
}

// Dashboard renders the single-page dashboard. Every request is a full
// top-to-bottom render: the theme comes from the request, a fresh mock
// series is drawn, and upstream calls run only for submitted inputs.
type Dashboard struct {
	container *di.Container
	topN      int
	tmpl      *template.Template
	log       zerolog.Logger
}

// NewDashboard parses the embedded page template
func NewDashboard(container *di.Container, topN int, log zerolog.Logger) (*Dashboard, error) {
	tmpl, err := template.New("index.html").Funcs(templateFuncs).ParseFS(embedded.Files, "frontend/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse dashboard template: %w", err)
	}

	return &Dashboard{
		container: container,
		topN:      topN,
		tmpl:      tmpl,
		log:       log.With().Str("component", "dashboard").Logger(),
	}, nil
}

var templateFuncs = template.FuncMap{
	"f2": func(v float64) string {
		return fmt.Sprintf("%.2f", v)
	},
	"num": func(v *float64) string {
		if v == nil {
			return "n/a"
		}
		return fmt.Sprintf("%.2f", *v)
	},
	"pct": func(v *float64) string {
		if v == nil {
			return "n/a"
		}
		return fmt.Sprintf("%.2f%%", *v*100)
	},
}

// ServeHTTP handles GET / (query: theme, tab, q, prompt, quiz)
func (d *Dashboard) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer utils.OperationTimer("dashboard_render", 5*time.Second, d.log)()

	query := r.URL.Query()
	theme := display.ParseTheme(query.Get("theme"))
	activeTab := ParseTab(query.Get("tab"))
	c := d.container

	data := pageData{
		Theme:             theme,
		Palette:           display.PaletteFor(theme),
		LightURL:          pageURL(display.ThemeLight, activeTab),
		DarkURL:           pageURL(display.ThemeDark, activeTab),
		ActiveTab:         activeTab,
		IndexName:         index.Name,
		Constituents:      c.IndexService.All(),
		Methodology:       c.IndexService.Methodology(),
		CompletionEnabled: c.ChatbotService.CompletionEnabled(),
		Quiz:              c.QuizService.Question(),
		ContactURL:        ContactURL,
	}
	for _, t := range tabs {
		data.Tabs = append(data.Tabs, tabLink{
			Label:  t.Label,
			URL:    pageURL(theme, t.ID),
			Active: t.ID == activeTab,
		})
	}

	// Charts tab
	if svg, err := c.ChartsService.WeightsBarChart(c.IndexService.TopN(d.topN), theme); err != nil {
		d.log.Warn().Err(err).Msg("Weights chart unavailable")
	} else {
		data.WeightsChart = template.HTML(svg)
	}
	if fact, ok := c.FactsService.Random(); ok {
		data.Fact = fact.Text
	}

	// Chatbot tab
	d.fillChat(r, &data)

	// Prediction tab: chart and insights describe the same series
	s := c.SeriesGenerator.Generate()
	data.RenderID = s.RenderID.String()
	data.Insights = c.InsightsService.Compute(s)
	if svg, err := c.ChartsService.TrendLineChart(s, charts.DefaultSMAPeriod, theme); err != nil {
		d.log.Warn().Err(err).Str("render_id", data.RenderID).Msg("Trend chart unavailable")
	} else {
		data.TrendChart = template.HTML(svg)
	}

	var buf bytes.Buffer
	if err := d.tmpl.Execute(&buf, data); err != nil {
		d.log.Error().Err(err).Msg("Failed to render dashboard")
		http.Error(w, "Failed to render dashboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(buf.Bytes()); err != nil {
		d.log.Debug().Err(err).Msg("Failed to write dashboard response")
	}
}

func (d *Dashboard) fillChat(r *http.Request, data *pageData) {
	query := r.URL.Query()
	c := d.container

	data.Question = query.Get("q")
	if answer, err := c.ChatbotService.Ask(r.Context(), data.Question); err == nil {
		data.Answer = answer.Answer
	} else if !errors.Is(err, chatbot.ErrEmptyQuestion) {
		d.log.Error().Err(err).Msg("Q&A failed")
	}

	data.Prompt = query.Get("prompt")
	if completion, err := c.ChatbotService.Complete(r.Context(), data.Prompt); err == nil {
		data.Completion = &completion
	} else if !errors.Is(err, chatbot.ErrEmptyQuestion) {
		d.log.Error().Err(err).Msg("Completion failed")
	}

	data.QuizAnswer = query.Get("quiz")
	if result, err := c.QuizService.Grade(data.QuizAnswer); err == nil {
		data.QuizResult = &result
	} else if !errors.Is(err, quiz.ErrNoAnswer) {
		d.log.Error().Err(err).Msg("Quiz grading failed")
	}
}

func pageURL(theme display.Theme, tab string) string {
	v := url.Values{}
	v.Set("theme", theme.String())
	v.Set("tab", tab)
	return "/?" + v.Encode()
}
