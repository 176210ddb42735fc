// cmd/monitor/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tamzrod/modbus-sensorbridge/internal/mapping"
	"github.com/tamzrod/modbus-sensorbridge/internal/readback"
)

// --- STYLES ---
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#575B7E")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().Bold(true)

	addrStyle  = lipgloss.NewStyle().Width(8).Align(lipgloss.Right).Padding(0, 1)
	pathStyle  = lipgloss.NewStyle().Width(32).Padding(0, 1)
	encStyle   = lipgloss.NewStyle().Width(9).Padding(0, 1)
	valueStyle = lipgloss.NewStyle().Width(16).Align(lipgloss.Right).Padding(0, 1)

	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	footerStyle = lipgloss.NewStyle().Faint(true)
)

// --- MODEL ---
type tickMsg time.Time

type row struct {
	entry mapping.Entry
	value float64
	err   error
}

type model struct {
	cli      *readback.Client
	target   string
	interval time.Duration
	rows     []row
	polls    int
}

func newModel(cli *readback.Client, target string, entries []mapping.Entry, interval time.Duration) model {
	rows := make([]row, len(entries))
	for i, e := range entries {
		rows[i] = row{entry: e}
	}
	return model{cli: cli, target: target, interval: interval, rows: rows}
}

func (m model) Init() tea.Cmd {
	return m.tick()
}

func (m model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// --- UPDATE ---
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tickMsg:
		for i := range m.rows {
			m.rows[i].value, m.rows[i].err = m.cli.ReadEntry(m.rows[i].entry)
		}
		m.polls++
		return m, m.tick()
	}

	return m, nil
}

// --- VIEW ---
func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("sensorbridge monitor " + m.target))
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render(
		addrStyle.Render("addr") +
			pathStyle.Render("sensor path") +
			encStyle.Render("encoding") +
			valueStyle.Render("value"),
	))
	b.WriteString("\n")

	for _, r := range m.rows {
		line := addrStyle.Render(fmt.Sprintf("0x%04x", r.entry.Address)) +
			pathStyle.Render(r.entry.Path) +
			encStyle.Render(r.entry.Enc.String())
		if r.err != nil {
			line += valueStyle.Render(errStyle.Render("ERR"))
		} else {
			line += valueStyle.Render(fmt.Sprintf("%g", r.value))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render(fmt.Sprintf("polls: %d  interval: %s  q to quit", m.polls, m.interval)))
	b.WriteString("\n")

	return b.String()
}

func main() {
	var (
		target   = flag.String("target", "localhost:5020", "bridge address (host:port)")
		unitID   = flag.Uint("unit", 1, "unit/slave id to use")
		mapFile  = flag.String("mapping", "device-mapping.txt", "mapping file the bridge was started with")
		interval = flag.Duration("interval", time.Second, "poll interval")
	)
	flag.Parse()

	entries, err := mapping.Load(*mapFile)
	if err != nil {
		log.Fatalf("mapping load failed: %v", err)
	}

	cli, err := readback.New(readback.Config{
		Target: *target,
		UnitID: uint8(*unitID),
	})
	if err != nil {
		log.Fatalf("connect failed: %v", err)
	}
	defer cli.Close()

	p := tea.NewProgram(newModel(cli, *target, entries, *interval), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error running monitor: %v\n", err)
		os.Exit(1)
	}
}
