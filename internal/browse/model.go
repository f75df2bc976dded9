// Package browse implements the interactive "browse" TUI: a tab-switching
// bubbletea model plus a KeyMap over a decoded classfile.Class.
package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mabhi256/jclassfile/classfile"
	"github.com/mabhi256/jclassfile/classfile/render"
	"github.com/mabhi256/jclassfile/utils"
)

// Tab identifies one of the browse views.
type Tab int

const (
	SummaryTab Tab = iota
	FieldsTab
	MethodsTab
	AttributesTab
)

func (t Tab) String() string {
	switch t {
	case SummaryTab:
		return "Summary"
	case FieldsTab:
		return "Fields"
	case MethodsTab:
		return "Methods"
	case AttributesTab:
		return "Attributes"
	default:
		return "?"
	}
}

var allTabs = []Tab{SummaryTab, FieldsTab, MethodsTab, AttributesTab}

// KeyMap is the browse TUI's key bindings.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	Quit  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left", "h")),
		Right: key.NewBinding(key.WithKeys("right", "l")),
		Up:    key.NewBinding(key.WithKeys("up", "k")),
		Down:  key.NewBinding(key.WithKeys("down", "j")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c")),
	}
}

// Model is the browse TUI's bubbletea model.
type Model struct {
	class *classfile.Class

	currentTab Tab
	scroll     int
	width      int
	height     int

	keys KeyMap
}

// New builds the initial browse model for an already-decoded class.
func New(c *classfile.Class) *Model {
	return &Model{
		class:      c,
		currentTab: SummaryTab,
		keys:       DefaultKeyMap(),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Left):
			m.switchTab(-1)
		case key.Matches(msg, m.keys.Right):
			m.switchTab(1)
		case key.Matches(msg, m.keys.Up):
			if m.scroll > 0 {
				m.scroll--
			}
		case key.Matches(msg, m.keys.Down):
			m.scroll++
		}
	}
	return m, nil
}

func (m *Model) switchTab(delta int) {
	idx := int(m.currentTab) + delta
	if idx < 0 {
		idx = len(allTabs) - 1
	}
	if idx >= len(allTabs) {
		idx = 0
	}
	m.currentTab = allTabs[idx]
	m.scroll = 0
}

func (m *Model) View() string {
	var b strings.Builder

	var tabLabels []string
	for _, t := range allTabs {
		style := utils.TabInactiveStyle
		if t == m.currentTab {
			style = utils.TabActiveStyle
		}
		tabLabels = append(tabLabels, style.Render(t.String()))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabLabels...))
	b.WriteString("\n\n")

	var body string
	switch m.currentTab {
	case SummaryTab:
		body = render.Summary(m.class)
	case FieldsTab:
		body = render.Fields(m.class)
	case MethodsTab:
		body = render.Methods(m.class)
	case AttributesTab:
		body = render.AttributeNames(m.class.Attributes)
	}
	b.WriteString(scrollView(body, m.scroll, m.height-4))

	b.WriteString("\n")
	b.WriteString(utils.HelpBarStyle.Render(fmt.Sprintf("tab %d/%d — h/l switch tabs, j/k scroll, q quit", int(m.currentTab)+1, len(allTabs))))

	return b.String()
}

func scrollView(body string, scroll, height int) string {
	lines := strings.Split(body, "\n")
	if height <= 0 || height >= len(lines) {
		return body
	}
	if scroll > len(lines)-height {
		scroll = len(lines) - height
	}
	if scroll < 0 {
		scroll = 0
	}
	return strings.Join(lines[scroll:scroll+height], "\n")
}

// Run starts the browse TUI program for an already-decoded class.
func Run(c *classfile.Class) error {
	p := tea.NewProgram(New(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
