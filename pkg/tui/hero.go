package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/vitrin/vitrin-cli/pkg/models"
)

const heroInterval = 5 * time.Second

// defaultHeroSlides is the static carousel content shown on the landing
// view; no schema backs it.
var defaultHeroSlides = []models.HeroSlide{
	{
		Title:    "Summer Collection 2025",
		Subtitle: "Discover the hottest trends",
		CTA:      "Shop Now",
	},
	{
		Title:    "Premium Quality Products",
		Subtitle: "Crafted with excellence",
		CTA:      "Explore",
	},
	{
		Title:    "Limited Time Offers",
		Subtitle: "Up to 50% off selected items",
		CTA:      "Get Deals",
	},
}

// HeroModel cycles the carousel slides. It advances on a timer with
// wraparound and accepts manual navigation; a manual step does not reset
// the timer.
type HeroModel struct {
	slides  []models.HeroSlide
	current int
	width   int
}

func NewHero() *HeroModel {
	return &HeroModel{slides: defaultHeroSlides, width: 60}
}

func (m *HeroModel) Init() tea.Cmd {
	return m.tick()
}

func (m *HeroModel) tick() tea.Cmd {
	return tea.Tick(heroInterval, func(t time.Time) tea.Msg {
		return heroTickMsg(t)
	})
}

func (m *HeroModel) SetWidth(width int) {
	if width > 0 {
		m.width = width
	}
}

func (m *HeroModel) Next() {
	m.current = (m.current + 1) % len(m.slides)
}

func (m *HeroModel) Prev() {
	m.current = (m.current - 1 + len(m.slides)) % len(m.slides)
}

func (m *HeroModel) Current() int {
	return m.current
}

func (m *HeroModel) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(heroTickMsg); ok {
		m.Next()
		return m.tick()
	}
	return nil
}

func (m *HeroModel) View() string {
	slide := m.slides[m.current]
	inner := m.width - 6
	if inner < 20 {
		inner = 20
	}

	center := lipgloss.NewStyle().Width(inner).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString(center.Render(TitleStyle.Render(slide.Title)))
	b.WriteString("\n")
	b.WriteString(center.Render(wordwrap.String(slide.Subtitle, inner)))
	b.WriteString("\n\n")
	b.WriteString(center.Render(ChipActiveStyle.Render("[ " + slide.CTA + " ]")))
	b.WriteString("\n\n")
	b.WriteString(center.Render(m.renderDots()))

	return ActiveBorderStyle.Width(m.width - 2).Render(b.String())
}

func (m *HeroModel) renderDots() string {
	var dots []string
	for i := range m.slides {
		if i == m.current {
			dots = append(dots, SelectedStyle.Render("●"))
		} else {
			dots = append(dots, DimStyle.Render("○"))
		}
	}
	return strings.Join(dots, " ")
}
