package knowledge

import (
	"testing"

	"github.com/onewindow/helpdesk-go/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(zap.NewNop())
	s.LoadDefault()
	return s
}

func TestStoreMatch(t *testing.T) {
	s := newTestStore(t)

	t.Run("exact question match", func(t *testing.T) {
		result := s.Match("Как подключиться к VPN?", model.LanguageRussian)
		require.NotEmpty(t, result.BestAnswer)
		assert.Equal(t, "Как подключиться к VPN?", result.BestQuestion)
		assert.GreaterOrEqual(t, result.Similarity, 0.85)
	})

	t.Run("no overlap yields empty result", func(t *testing.T) {
		result := s.Match("xyzzy frobnicate", model.LanguageRussian)
		assert.Empty(t, result.BestAnswer)
		assert.Empty(t, result.BestQuestion)
		assert.Zero(t, result.Similarity)
	})

	t.Run("kazakh base is used for kazakh requests", func(t *testing.T) {
		result := s.Match("VPN-ге қалай қосылуға болады?", model.LanguageKazakh)
		require.NotEmpty(t, result.BestAnswer)
		assert.Equal(t, "VPN-ге қалай қосылуға болады?", result.BestQuestion)
		assert.GreaterOrEqual(t, result.Similarity, 0.85)
	})

	t.Run("missing language base falls back to russian", func(t *testing.T) {
		s := NewStore(zap.NewNop())
		s.SetEntries(model.LanguageRussian, []Entry{
			{Question: "Как сменить пароль?", Answer: "Через портал самообслуживания."},
		})

		result := s.Match("как сменить пароль", model.LanguageKazakh)
		assert.Equal(t, "Как сменить пароль?", result.BestQuestion)
		assert.Greater(t, result.Similarity, 0.0)
	})

	t.Run("empty store yields empty result", func(t *testing.T) {
		s := NewStore(zap.NewNop())
		result := s.Match("привет", model.LanguageRussian)
		assert.Empty(t, result.BestAnswer)
		assert.Zero(t, result.Similarity)
	})

	t.Run("answer-side overlap counts at half weight", func(t *testing.T) {
		s := NewStore(zap.NewNop())
		s.SetEntries(model.LanguageRussian, []Entry{
			{Question: "совсем другое", Answer: "перезапустите очередь печати"},
		})

		result := s.Match("перезапустите очередь печати", model.LanguageRussian)
		require.NotEmpty(t, result.BestAnswer)
		assert.InDelta(t, 0.5, result.Similarity, 1e-9)
	})

	t.Run("tie keeps first declared entry", func(t *testing.T) {
		s := NewStore(zap.NewNop())
		s.SetEntries(model.LanguageRussian, []Entry{
			{Question: "общий вопрос", Answer: "первый ответ"},
			{Question: "общий вопрос", Answer: "второй ответ"},
		})

		result := s.Match("общий вопрос", model.LanguageRussian)
		assert.Equal(t, "первый ответ", result.BestAnswer)
	})
}

func TestStoreCount(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, 6, s.Count(model.LanguageRussian))
	assert.Equal(t, 3, s.Count(model.LanguageKazakh))
}
