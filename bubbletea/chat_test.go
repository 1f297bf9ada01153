package bubbletea_test

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/cdpdoc"
	cdptea "github.com/fwojciec/cdpdoc/bubbletea"
	"github.com/fwojciec/cdpdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(searcher cdpdoc.Searcher) cdptea.Model {
	m := cdptea.NewModel(context.Background(), cdpdoc.DefaultCatalog(), searcher)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(cdptea.Model)
}

func typeText(t *testing.T, m cdptea.Model, text string) cdptea.Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return updated.(cdptea.Model)
}

// findAnswer runs cmd, expanding batches, and returns the AnswerMsg it produces.
func findAnswer(t *testing.T, cmd tea.Cmd) cdptea.AnswerMsg {
	t.Helper()
	require.NotNil(t, cmd)
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case cdptea.AnswerMsg:
			return msg
		case tea.BatchMsg:
			queue = append(queue, msg...)
		}
	}
	t.Fatal("command produced no AnswerMsg")
	return cdptea.AnswerMsg{}
}

func TestModel_NewModel(t *testing.T) {
	t.Parallel()

	m := cdptea.NewModel(context.Background(), cdpdoc.DefaultCatalog(), &mock.Searcher{})

	assert.Equal(t, []cdptea.Message{{Role: cdptea.RoleBot, Text: cdptea.Greeting}}, m.Messages())
	assert.False(t, m.Thinking())
	assert.Equal(t, "Loading...", m.View())
	assert.NotNil(t, m.Init())
}

func TestModel_Ask(t *testing.T) {
	t.Parallel()

	t.Run("classifies, searches and appends answer", func(t *testing.T) {
		t.Parallel()

		var gotCDP cdpdoc.CDP
		var gotQuestion string
		searcher := &mock.Searcher{
			SearchFn: func(_ context.Context, cdp cdpdoc.CDP, question string) (*cdpdoc.Result, error) {
				gotCDP, gotQuestion = cdp, question
				return cdpdoc.Found(cdp, []string{"Open the Lytics console.", "Click Create Audience."}), nil
			},
		}
		m := typeText(t, newModel(searcher), "How do I connect Lytics to my warehouse?")

		updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m = updated.(cdptea.Model)

		assert.True(t, m.Thinking())
		assert.Contains(t, m.View(), "Thinking...")
		msgs := m.Messages()
		require.Len(t, msgs, 2)
		assert.Equal(t, cdptea.Message{Role: cdptea.RoleUser, Text: "How do I connect Lytics to my warehouse?"}, msgs[1])

		answer := findAnswer(t, cmd)
		assert.Equal(t, cdpdoc.Lytics, gotCDP)
		assert.Equal(t, "How do I connect Lytics to my warehouse?", gotQuestion)

		updated, _ = m.Update(answer)
		m = updated.(cdptea.Model)

		assert.False(t, m.Thinking())
		assert.NotContains(t, m.View(), "Thinking...")
		msgs = m.Messages()
		require.Len(t, msgs, 3)
		assert.Equal(t, cdptea.RoleBot, msgs[2].Role)
		assert.Equal(t, "[lytics]\n1. Open the Lytics console.\n2. Click Create Audience.", msgs[2].Text)
	})

	t.Run("shows diagnostic for refused question", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.Searcher{
			SearchFn: func(_ context.Context, cdp cdpdoc.CDP, _ string) (*cdpdoc.Result, error) {
				return cdpdoc.Refused(cdp), nil
			},
		}
		m := typeText(t, newModel(searcher), "Who won the football match?")

		updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m = updated.(cdptea.Model)
		updated, _ = m.Update(findAnswer(t, cmd))
		m = updated.(cdptea.Model)

		msgs := m.Messages()
		assert.Equal(t, "[segment]\n"+cdpdoc.MessageRefused, msgs[len(msgs)-1].Text)
	})

	t.Run("shows search errors", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.Searcher{
			SearchFn: func(context.Context, cdpdoc.CDP, string) (*cdpdoc.Result, error) {
				return nil, cdpdoc.Errorf(cdpdoc.EUNAVAILABLE, "embedding service unavailable")
			},
		}
		m := typeText(t, newModel(searcher), "How do I track events?")

		updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m = updated.(cdptea.Model)
		updated, _ = m.Update(findAnswer(t, cmd))
		m = updated.(cdptea.Model)

		msgs := m.Messages()
		assert.Equal(t, "Error: embedding service unavailable", msgs[len(msgs)-1].Text)
		assert.False(t, m.Thinking())
	})

	t.Run("ignores blank input", func(t *testing.T) {
		t.Parallel()

		m := typeText(t, newModel(&mock.Searcher{}), "   ")

		updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m = updated.(cdptea.Model)

		assert.Nil(t, cmd)
		assert.Len(t, m.Messages(), 1)
		assert.False(t, m.Thinking())
	})

	t.Run("ignores submit while thinking", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.Searcher{
			SearchFn: func(_ context.Context, cdp cdpdoc.CDP, _ string) (*cdpdoc.Result, error) {
				return cdpdoc.Found(cdp, []string{"x"}), nil
			},
		}
		m := typeText(t, newModel(searcher), "first segment question")
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m = typeText(t, updated.(cdptea.Model), "second")

		updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m = updated.(cdptea.Model)

		assert.Nil(t, cmd)
		assert.Len(t, m.Messages(), 2)
	})
}

func TestModel_Quit(t *testing.T) {
	t.Parallel()

	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc} {
		m := newModel(&mock.Searcher{})

		_, cmd := m.Update(tea.KeyMsg{Type: key})

		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestAnswerText_ErrorFallback(t *testing.T) {
	t.Parallel()

	searcher := &mock.Searcher{
		SearchFn: func(context.Context, cdpdoc.CDP, string) (*cdpdoc.Result, error) {
			return nil, errors.New("disk failure")
		},
	}
	m := typeText(t, newModel(searcher), "segment setup")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(cdptea.Model)
	updated, _ = m.Update(findAnswer(t, cmd))
	m = updated.(cdptea.Model)

	msgs := m.Messages()
	assert.Equal(t, "Error: Internal error.", msgs[len(msgs)-1].Text)
}
