// Package bubbletea implements the interactive chat client on Bubble Tea.
package bubbletea

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/cdpdoc"
)

// Role identifies who wrote a transcript message.
type Role string

// Transcript roles.
const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Message is one entry in the chat transcript.
type Message struct {
	Role Role
	Text string
}

// AnswerMsg carries a finished search back to the model.
type AnswerMsg struct {
	CDP    cdpdoc.CDP
	Result *cdpdoc.Result
	Err    error
}

// Greeting is the first bot message of every session.
const Greeting = "Ask me how to do something in Segment, mParticle, Lytics or Zeotap."

// Model is the Bubble Tea model for the chat client. Questions are
// classified with the catalog and answered by the searcher one at a time.
type Model struct {
	ctx      context.Context
	catalog  *cdpdoc.Catalog
	searcher cdpdoc.Searcher

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	messages []Message
	thinking bool
	ready    bool
}

// NewModel creates a chat model.
func NewModel(ctx context.Context, catalog *cdpdoc.Catalog, searcher cdpdoc.Searcher) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask a CDP question and press Enter"
	ti.Focus()
	ti.CharLimit = 0

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = thinkingStyle

	return Model{
		ctx:      ctx,
		catalog:  catalog,
		searcher: searcher,
		input:    ti,
		viewport: viewport.New(0, 0),
		spinner:  sp,
		messages: []Message{{Role: RoleBot, Text: Greeting}},
	}
}

// Messages returns a copy of the transcript.
func (m Model) Messages() []Message {
	out := make([]Message, len(m.messages))
	copy(out, m.messages)
	return out
}

// Thinking reports whether a search is in flight.
func (m Model) Thinking() bool { return m.thinking }

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key, window and search events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, fh := transcriptStyle.GetFrameSize()
		_, ih := inputStyle.GetFrameSize()
		// header, input line, status line
		reserved := 3 + ih + fh
		m.viewport.Width = max(20, msg.Width-2)
		m.viewport.Height = max(3, msg.Height-reserved)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case AnswerMsg:
		m.thinking = false
		m.messages = append(m.messages, Message{Role: RoleBot, Text: answerText(msg)})
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if !m.thinking {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	question := strings.TrimSpace(m.input.Value())
	if question == "" || m.thinking {
		return m, nil
	}

	m.input.Reset()
	m.thinking = true
	m.messages = append(m.messages, Message{Role: RoleUser, Text: question})
	m.refresh()

	return m, tea.Batch(m.ask(question), m.spinner.Tick)
}

// ask returns a command that runs the search off the update loop.
func (m Model) ask(question string) tea.Cmd {
	ctx, catalog, searcher := m.ctx, m.catalog, m.searcher
	return func() tea.Msg {
		cdp := catalog.Classify(question)
		res, err := searcher.Search(ctx, cdp, question)
		return AnswerMsg{CDP: cdp, Result: res, Err: err}
	}
}

func answerText(msg AnswerMsg) string {
	if msg.Err != nil {
		return "Error: " + cdpdoc.ErrorMessage(msg.Err)
	}
	return fmt.Sprintf("[%s]\n%s", msg.CDP, cdpdoc.FormatResult(msg.Result))
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

func (m Model) renderTranscript() string {
	var b strings.Builder
	for i, msg := range m.messages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		switch msg.Role {
		case RoleUser:
			b.WriteString(userStyle.Render("You: "))
		default:
			b.WriteString(botStyle.Render("Bot: "))
		}
		b.WriteString(msg.Text)
	}
	return b.String()
}

// View renders the transcript, input box and status line.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := headerStyle.Render("CDP Support Chat")
	transcript := transcriptStyle.Render(m.viewport.View())
	input := inputStyle.Render(m.input.View())

	status := statusStyle.Render("Enter to ask, Esc to quit")
	if m.thinking {
		status = m.spinner.View() + " " + thinkingStyle.Render("Thinking...")
	}
	return header + "\n" + transcript + "\n" + input + "\n" + status
}

var (
	headerStyle     = lipgloss.NewStyle().Bold(true)
	transcriptStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	userStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	botStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	thinkingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)
