package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rohanthewiz/logger"

	"signupform/models"
)

// ============================================================================
// Registration Form TUI
//
// One Bubble Tea model drives the whole form. The model mirrors every
// keystroke into the shared FormInput, so the validation engine derives
// field feedback and submittability from the same values the submitter
// will snapshot. The form stays live while a submission is in flight —
// only the submit action itself is gated by the busy flag.
// ============================================================================

// Field focus order within the form.
const (
	fieldEmail = iota
	fieldUsername
	fieldPassword
	fieldCount
)

// toastDuration is how long a notification stays on screen.
const toastDuration = 4 * time.Second

// submitDoneMsg reports the outcome of a submission command.
type submitDoneMsg struct {
	outcome models.SubmitOutcome
}

// toastMsg carries notification text from the channel notifier.
type toastMsg string

// toastExpiredMsg clears a toast after its display window. The id
// guards against an old timer wiping a newer toast.
type toastExpiredMsg struct {
	id int
}

// Model is the Bubble Tea model for the registration form.
type Model struct {
	form      *models.FormInput
	submitter *models.Submitter
	notifier  channelNotifier

	inputs [fieldCount]textinput.Model
	focus  int

	spin       spinner.Model
	submitting bool

	toast   string
	toastID int
}

// New builds the form model wired to a validated config.
func New(cfg *models.Config) Model {
	form := models.NewFormInput()
	notifier := newChannelNotifier()

	m := Model{
		form:      form,
		submitter: models.NewSubmitter(cfg, form, notifier),
		notifier:  notifier,
	}

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254
	email.Width = 38
	email.Focus()
	m.inputs[fieldEmail] = email

	username := textinput.New()
	username.Placeholder = "choose a username"
	username.CharLimit = 50
	username.Width = 38
	m.inputs[fieldUsername] = username

	password := textinput.New()
	password.Placeholder = "create a password"
	password.CharLimit = 128
	password.Width = 38
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	m.inputs[fieldPassword] = password

	m.spin = spinner.New()
	m.spin.Spinner = spinner.Dot
	m.spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return m
}

// Init starts cursor blink and the notification drain.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForToast())
}

// waitForToast blocks on the notifier channel and re-arms itself after
// each message via the Update handler.
func (m Model) waitForToast() tea.Cmd {
	ch := m.notifier.ch
	return func() tea.Msg {
		return toastMsg(<-ch)
	}
}

// submitCmd runs one submission attempt off the event loop. Outcome
// detail for the user travels through the notifier; the error return
// exists only for logging.
func (m Model) submitCmd() tea.Cmd {
	sub := m.submitter
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		outcome, err := sub.Submit(ctx)
		if err != nil {
			logger.LogErr(err, "signup submission")
		}
		return submitDoneMsg{outcome: outcome}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "down":
			return m.moveFocus(1), nil

		case "shift+tab", "up":
			return m.moveFocus(-1), nil

		case "ctrl+r":
			m.form.TogglePasswordVisible()
			if m.form.PasswordVisible {
				m.inputs[fieldPassword].EchoMode = textinput.EchoNormal
			} else {
				m.inputs[fieldPassword].EchoMode = textinput.EchoPassword
			}
			return m, nil

		case "enter":
			// Advisory gate only — the submitter enforces validity and
			// single-flight independently.
			if m.submitting || !models.FormValid(m.form.Snapshot()) {
				return m, nil
			}
			m.submitting = true
			return m, tea.Batch(m.submitCmd(), m.spin.Tick)
		}

		// Any other key goes to the focused field
		return m.updateFocused(msg)

	case submitDoneMsg:
		m.submitting = false
		if msg.outcome == models.SubmitSuccess {
			// The submitter already reset the form; blank the widgets
			// to match and return focus to the first field
			for i := range m.inputs {
				m.inputs[i].SetValue("")
			}
			return m.setFocus(fieldEmail), nil
		}
		return m, nil

	case toastMsg:
		m.toast = string(msg)
		m.toastID++
		id := m.toastID
		expire := tea.Tick(toastDuration, func(time.Time) tea.Msg {
			return toastExpiredMsg{id: id}
		})
		return m, tea.Batch(m.waitForToast(), expire)

	case toastExpiredMsg:
		if msg.id == m.toastID {
			m.toast = ""
		}
		return m, nil

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m.updateFocused(msg)
}

// updateFocused routes a message to the focused input and mirrors the
// result into the form so validation always sees current text.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	switch m.focus {
	case fieldEmail:
		m.form.SetEmail(m.inputs[fieldEmail].Value())
	case fieldUsername:
		m.form.SetUsername(m.inputs[fieldUsername].Value())
	case fieldPassword:
		m.form.SetPassword(m.inputs[fieldPassword].Value())
	}

	return m, cmd
}

// moveFocus shifts focus by delta with wraparound.
func (m Model) moveFocus(delta int) Model {
	return m.setFocus((m.focus + delta + fieldCount) % fieldCount)
}

func (m Model) setFocus(field int) Model {
	m.focus = field
	for i := range m.inputs {
		if i == field {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Create your account"))
	b.WriteString("\n")

	// Email — border reflects the tri-state indicator
	emailStyle := fieldNeutralStyle
	switch models.EmailIndicator(m.form.Email) {
	case models.EmailOK:
		emailStyle = fieldOKStyle
	case models.EmailBad:
		emailStyle = fieldBadStyle
	}
	b.WriteString(labelStyle.Render("Email"))
	b.WriteString("\n")
	b.WriteString(emailStyle.Render(m.inputs[fieldEmail].View()))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Username"))
	b.WriteString("\n")
	b.WriteString(fieldNeutralStyle.Render(m.inputs[fieldUsername].View()))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Password  (ctrl+r to show/hide)"))
	b.WriteString("\n")
	b.WriteString(fieldNeutralStyle.Render(m.inputs[fieldPassword].View()))
	b.WriteString("\n")

	b.WriteString(m.renderChecklist())
	b.WriteString("\n")
	b.WriteString(m.renderSubmit())

	if m.toast != "" {
		b.WriteString("\n")
		b.WriteString(toastStyle.Render(m.toast))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab: next field • enter: submit • esc: quit"))
	b.WriteString("\n")

	return b.String()
}

// renderChecklist draws the live five-rule password breakdown.
func (m Model) renderChecklist() string {
	status := models.EvaluatePassword(m.form.Password)

	rows := []struct {
		met   bool
		label string
	}{
		{status.MinLength, "At least 8 characters"},
		{status.Upper, "An uppercase letter"},
		{status.Lower, "A lowercase letter"},
		{status.Special, "A special character"},
		{status.Digit, "A number"},
	}

	var b strings.Builder
	for _, row := range rows {
		if row.met {
			b.WriteString(ruleMetStyle.Render("  ✓ " + row.label))
		} else {
			b.WriteString(ruleUnmetStyle.Render("  ✗ " + row.label))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderSubmit draws the submit row: spinner while in flight, enabled
// or disabled button otherwise.
func (m Model) renderSubmit() string {
	if m.submitting {
		return fmt.Sprintf("%s Submitting...", m.spin.View())
	}
	if models.FormValid(m.form.Snapshot()) && !m.submitter.Busy() {
		return buttonEnabledStyle.Render("Sign Up")
	}
	return buttonDisabledStyle.Render("Sign Up")
}
