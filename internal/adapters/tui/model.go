// Package tui implements the interactive renderer on Bubble Tea.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.frostpack.dev/frost/internal/ui/style"
)

// StepStatus represents the current state of a pipeline step.
type StepStatus string

const (
	// StatusPending indicates the step is waiting to start.
	StatusPending StepStatus = "Pending"
	// StatusRunning indicates the step is currently executing.
	StatusRunning StepStatus = "Running"
	// StatusDone indicates the step completed successfully.
	StatusDone StepStatus = "Done"
	// StatusSkipped indicates the step was answered from cache.
	StatusSkipped StepStatus = "Skipped"
	// StatusError indicates the step failed.
	StatusError StepStatus = "Error"
)

// StepNode represents a single step in the UI list.
type StepNode struct {
	Name     string
	Status   StepStatus
	LastLine string
	Started  time.Time
	Duration time.Duration
	Err      error
}

// Model represents the TUI state: an ordered step list with statuses.
type Model struct {
	Steps   []*StepNode
	StepMap map[string]*StepNode
	Done    bool
	width   int
}

// NewModel creates an empty TUI model.
func NewModel() *Model {
	return &Model{StepMap: make(map[string]*StepNode)}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case MsgInitSteps:
		m.Steps = m.Steps[:0]
		for _, name := range msg.Steps {
			node := &StepNode{Name: name, Status: StatusPending}
			m.Steps = append(m.Steps, node)
			m.StepMap[name] = node
		}

	case MsgStepStart:
		if node, ok := m.StepMap[msg.Name]; ok {
			node.Status = StatusRunning
			node.Started = msg.StartTime
		}

	case MsgStepLog:
		if node, ok := m.StepMap[msg.Name]; ok {
			node.LastLine = msg.Line
		}

	case MsgStepComplete:
		if node, ok := m.StepMap[msg.Name]; ok {
			node.Duration = msg.EndTime.Sub(node.Started)
			switch {
			case msg.Err != nil:
				node.Status = StatusError
				node.Err = msg.Err
			case msg.Skipped:
				node.Status = StatusSkipped
			default:
				node.Status = StatusDone
			}
		}
	}

	return m, nil
}

var (
	pendingStyle = lipgloss.NewStyle().Foreground(style.Slate)
	runningStyle = lipgloss.NewStyle().Foreground(style.Glacier)
	doneStyle    = lipgloss.NewStyle().Foreground(style.Green)
	skippedStyle = lipgloss.NewStyle().Foreground(style.Yellow)
	errorStyle   = lipgloss.NewStyle().Foreground(style.Red)
	detailStyle  = lipgloss.NewStyle().Foreground(style.Slate)
)

// View renders the step list.
func (m *Model) View() string {
	var b strings.Builder

	for _, node := range m.Steps {
		var line string
		switch node.Status {
		case StatusRunning:
			line = runningStyle.Render(style.Dot+" "+node.Name) + runningLine(node)
		case StatusDone:
			line = doneStyle.Render(style.Check+" "+node.Name) +
				detailStyle.Render(fmt.Sprintf(" (%s)", node.Duration.Round(time.Millisecond)))
		case StatusSkipped:
			line = skippedStyle.Render("~ " + node.Name + " (up to date)")
		case StatusError:
			line = errorStyle.Render(style.Cross+" "+node.Name) +
				detailStyle.Render(" "+node.Err.Error())
		default:
			line = pendingStyle.Render(style.Circle + " " + node.Name)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func runningLine(node *StepNode) string {
	if node.LastLine == "" {
		return ""
	}
	return detailStyle.Render(" " + style.Arrow + " " + node.LastLine)
}
