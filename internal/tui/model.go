package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lazybear/internal/engine"
	"lazybear/internal/model"
	"lazybear/internal/store"
	"lazybear/internal/ui"
)

type calModel struct {
	ctx context.Context
	st  *store.Store

	width  int
	height int

	data     model.AppData
	selected time.Time
	taskSel  int

	adding bool
	input  textinput.Model

	lastLog string
}

func newCalModel(ctx context.Context, st *store.Store) calModel {
	ti := textinput.New()
	ti.Placeholder = "New task title…"
	ti.CharLimit = 120
	ti.Width = 40

	now := time.Now()
	return calModel{
		ctx:      ctx,
		st:       st,
		data:     st.Data(),
		selected: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		input:    ti,
		lastLog:  "Loaded.",
	}
}

func (m calModel) Init() tea.Cmd {
	return nil
}

func (m calModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m calModel) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.input.Blur()
		m.lastLog = "Add cancelled."
		return m, nil
	case "enter":
		title := strings.TrimSpace(m.input.Value())
		m.adding = false
		m.input.Blur()
		m.input.SetValue("")
		if title == "" {
			m.lastLog = "Empty title, nothing added."
			return m, nil
		}
		task := model.Task{
			ID:        model.NewID(),
			Title:     title,
			Date:      engine.DateString(m.selected),
			Priority:  model.PriorityMedium,
			SubTasks:  []model.SubTask{},
			PlanScope: model.ScopeDaily,
		}
		tasks := append(append([]model.Task{}, m.data.Tasks...), task)
		m.data = m.st.Apply(m.ctx, store.Patch{Tasks: &tasks})
		m.lastLog = "Added: " + title
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m calModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "h", "left":
		m.selected = m.selected.AddDate(0, 0, -1)
		m.taskSel = 0
	case "l", "right":
		m.selected = m.selected.AddDate(0, 0, 1)
		m.taskSel = 0
	case "K", "shift+up":
		m.selected = m.selected.AddDate(0, 0, -7)
		m.taskSel = 0
	case "J", "shift+down":
		m.selected = m.selected.AddDate(0, 0, 7)
		m.taskSel = 0
	case "[":
		m.selected = m.selected.AddDate(0, -1, 0)
		m.taskSel = 0
	case "]":
		m.selected = m.selected.AddDate(0, 1, 0)
		m.taskSel = 0
	case "t":
		now := time.Now()
		m.selected = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		m.taskSel = 0
	case "k", "up":
		if m.taskSel > 0 {
			m.taskSel--
		}
	case "j", "down":
		if m.taskSel < len(m.dayTasks())-1 {
			m.taskSel++
		}
	case "a":
		m.adding = true
		m.input.Focus()
		m.lastLog = "Adding task for " + engine.DateString(m.selected)
		return m, textinput.Blink
	case "x", " ":
		tasks := m.dayTasks()
		if m.taskSel < 0 || m.taskSel >= len(tasks) {
			m.lastLog = "No task selected."
			return m, nil
		}
		next := engine.ToggleTask(m.data.Tasks, tasks[m.taskSel].ID)
		m.data = m.st.Apply(m.ctx, store.Patch{Tasks: &next})
		m.lastLog = "Toggled: " + tasks[m.taskSel].Title
	case "r":
		m.data = m.st.Load(m.ctx)
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
	}
	return m, nil
}

func (m calModel) dayTasks() []model.Task {
	return engine.TasksOn(m.data.Tasks, engine.DateString(m.selected))
}

func (m calModel) View() string {
	header := m.renderHeader()
	grid := m.renderGrid()
	day := m.renderDay()
	footer := m.renderFooter()

	body := lipgloss.JoinHorizontal(lipgloss.Top, grid, " ", day)
	return header + "\n" + body + "\n" + footer + "\n"
}

func (m calModel) renderHeader() string {
	accent := lipgloss.NewStyle().Bold(true).Foreground(ui.PaletteColor(m.data.Theme))
	title := accent.Render(ui.IconBear + " Lazybear — " + m.selected.Format("January 2006"))
	quote := ui.Muted.Render(engine.QuoteOfDay(time.Now()))
	cups := engine.WaterOn(m.data.WaterLogs, engine.DateString(time.Now()))
	water := ui.Dim.Render(fmt.Sprintf("%s %d/%d", ui.IconWater, cups, engine.WaterCupsPerDay))
	return title + "  " + quote + "  " + water
}

func (m calModel) renderGrid() string {
	var b strings.Builder
	for _, wd := range []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"} {
		b.WriteString(ui.H2.Render(fmt.Sprintf("%-5s", wd)))
	}
	b.WriteString("\n")

	today := engine.DateString(time.Now())
	selected := engine.DateString(m.selected)
	for i, cell := range engine.MonthGrid(m.selected) {
		if i > 0 && i%7 == 0 {
			b.WriteString("\n")
		}
		if cell == nil {
			b.WriteString("     ")
			continue
		}
		date := engine.DateString(*cell)
		glyph := engine.EventGlyph(engine.EventsOn(m.data.SpecialEvents, date))
		mark := " "
		if glyph != "" {
			mark = "·"
		}
		if n := len(engine.TasksOn(m.data.Tasks, date)); n > 0 {
			mark = fmt.Sprintf("%d", n%10)
		}
		cellText := fmt.Sprintf("%2d%s  ", cell.Day(), mark)
		switch {
		case date == selected:
			b.WriteString(ui.SelectedDay.Render(cellText))
		case date == today:
			b.WriteString(ui.TodayCell.Render(cellText))
		default:
			b.WriteString(cellText)
		}
	}
	return ui.Panel.Render(b.String())
}

func (m calModel) renderDay() string {
	var b strings.Builder
	date := engine.DateString(m.selected)
	b.WriteString(ui.H2.Render(m.selected.Format("Mon, Jan 2")))

	events := engine.EventsOn(m.data.SpecialEvents, date)
	if glyph := engine.EventGlyph(events); glyph != "" {
		b.WriteString(" " + glyph)
		for _, e := range events {
			b.WriteString("\n" + ui.Muted.Render("• "+e.Title))
		}
	}
	b.WriteString("\n")

	tasks := m.dayTasks()
	if len(tasks) == 0 {
		b.WriteString(ui.Dim.Render("Nothing planned.") + "\n")
	}
	for i, t := range tasks {
		line := fmt.Sprintf("%s %s %s", ui.Checkbox(t.Completed), ui.PriorityText(t.Priority), t.Title)
		if t.Time != "" {
			line += ui.Muted.Render(" @" + t.Time)
		}
		if i == m.taskSel {
			line = "> " + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	if m.adding {
		b.WriteString("\n" + m.input.View() + "\n")
	}
	return ui.Panel.Render(b.String())
}

func (m calModel) renderFooter() string {
	help := "h/l day · J/K week · [/] month · t today · j/k select · x toggle · a add · r reload · q quit"
	return ui.Dim.Render(help) + "\n" + ui.Muted.Render(m.lastLog)
}
