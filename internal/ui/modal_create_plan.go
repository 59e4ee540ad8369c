package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"drdash/internal/jsonutil"
)

// CreatePlanModal collects a plan name and a JSON config object.
//
// The config editor keeps the object in parsed form: every keystroke re-parses
// the editor text, and a successful parse replaces the stored object. An
// invalid edit leaves the stored object at its last valid value while the
// editor shows the raw text, so display and state may transiently diverge.
// The stored object is what gets submitted.
type CreatePlanModal struct {
	name   textinput.Model
	editor textarea.Model
	config map[string]interface{}
	focus  int // 0 = name field, 1 = config editor
}

var _ View = (*CreatePlanModal)(nil)

// NewCreatePlanModal creates the modal with an empty name and "{}" config.
func NewCreatePlanModal() *CreatePlanModal {
	ti := textinput.New()
	ti.Placeholder = "plan-name"
	ti.Width = 40
	ti.Focus()

	ta := textarea.New()
	ta.SetWidth(44)
	ta.SetHeight(8)
	config := map[string]interface{}{}
	ta.SetValue(jsonutil.PrettyObject(config))

	return &CreatePlanModal{
		name:   ti,
		editor: ta,
		config: config,
	}
}

// Config returns the stored (last valid) config object.
func (m *CreatePlanModal) Config() map[string]interface{} { return m.config }

// Init implements View.
func (m *CreatePlanModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *CreatePlanModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "tab", "shift+tab":
			m.toggleFocus()
			return m, nil
		case "ctrl+s":
			return m, m.submit()
		case "enter":
			if m.focus == 0 {
				return m, m.submit()
			}
			// Enter inside the editor inserts a newline; fall through.
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.name, cmd = m.name.Update(msg)
	} else {
		m.editor, cmd = m.editor.Update(msg)
		if obj, ok := jsonutil.ParseObject(m.editor.Value()); ok {
			m.config = obj
		}
	}
	return m, cmd
}

// submit validates the name and emits CreatePlanMsg with the stored config.
// An empty trimmed name is a local validation failure: a notice, no API call.
func (m *CreatePlanModal) submit() tea.Cmd {
	name := strings.TrimSpace(m.name.Value())
	if name == "" {
		return func() tea.Msg { return reportFailure("Plan name is required") }
	}
	config := m.config
	return func() tea.Msg { return CreatePlanMsg{Name: name, Config: config} }
}

func (m *CreatePlanModal) toggleFocus() {
	if m.focus == 0 {
		m.focus = 1
		m.name.Blur()
		m.editor.Focus()
	} else {
		m.focus = 0
		m.editor.Blur()
		m.name.Focus()
	}
}

// View implements View.
func (m *CreatePlanModal) View() string {
	content := Styles.Title.Render("Create recovery plan") + "\n\n"
	content += Styles.Muted.Render("Name") + "\n"
	content += m.name.View() + "\n\n"
	content += Styles.Muted.Render("Config (JSON)") + "\n"
	content += m.editor.View() + "\n\n"
	content += Styles.Hint.Render("Enter/Ctrl+s: create  Tab: switch field  Esc: cancel")
	return Styles.Box.Render(content)
}
