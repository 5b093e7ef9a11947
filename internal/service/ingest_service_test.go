package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/onewindow/helpdesk-go/internal/knowledge"
	"github.com/onewindow/helpdesk-go/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newPipeline wires the orchestrator with no oracle and the built-in FAQ,
// i.e. the fully deterministic degraded mode.
func newPipeline(t *testing.T) *IngestService {
	t.Helper()

	logger := zap.NewNop()
	kb := knowledge.NewStore(logger)
	kb.LoadDefault()

	classifier := NewClassifierService(nil, time.Second, logger)
	replies := NewReplyService(nil, time.Second, logger)
	translator := NewTranslateService(nil, time.Second, logger)
	policy := AutoResolvePolicy{Threshold: 0.85, SuggestThreshold: 0.7}

	return NewIngestService(classifier, replies, translator, kb, policy, logger)
}

func TestIngestAutoResolvesExactFAQHit(t *testing.T) {
	s := newPipeline(t)

	outcome := s.Ingest(context.Background(), model.IngestRequest{Text: "Как подключиться к VPN?"})

	resolved, ok := outcome.(model.AutoResolved)
	require.True(t, ok, "expected AutoResolved, got %T", outcome)

	assert.Equal(t, model.StatusClosedAuto, outcome.OutcomeStatus())
	assert.Equal(t, model.CategoryVPN, resolved.Category)
	assert.Equal(t, "IT Security", resolved.Department)
	assert.Equal(t, model.LanguageRussian, resolved.Language)
	assert.GreaterOrEqual(t, resolved.Similarity, 0.85)
	assert.Contains(t, resolved.Answer, "VPN Client")
	assert.NotEmpty(t, resolved.Summary)
}

func TestIngestDraftsTicketOnWeakMatch(t *testing.T) {
	s := newPipeline(t)

	outcome := s.Ingest(context.Background(), model.IngestRequest{Text: "у меня сломался принтер срочно"})

	draft, ok := outcome.(model.TicketDraft)
	require.True(t, ok, "expected TicketDraft, got %T", outcome)

	assert.Equal(t, model.StatusNew, outcome.OutcomeStatus())
	assert.Equal(t, model.CategoryHardware, draft.Category)
	assert.Equal(t, model.PriorityCritical, draft.Priority)
	assert.Equal(t, "IT Support", draft.Department)
	assert.Less(t, draft.Similarity, 0.85)

	// The printer FAQ overlaps only weakly; a sub-threshold answer must
	// not leak into the suggested reply.
	assert.Equal(t, replyTemplates[model.CategoryHardware], draft.SuggestedReply)
}

func TestIngestKazakhRequest(t *testing.T) {
	s := newPipeline(t)

	outcome := s.Ingest(context.Background(), model.IngestRequest{Text: "бағдарлама орнату керек"})

	draft, ok := outcome.(model.TicketDraft)
	require.True(t, ok, "expected TicketDraft, got %T", outcome)

	assert.Equal(t, model.LanguageKazakh, draft.Language)
	assert.Equal(t, model.CategorySoftware, draft.Category)
	assert.Equal(t, model.PriorityMedium, draft.Priority)
	assert.NotEmpty(t, draft.SuggestedReply)

	// Without an oracle the template is phrase-translated toward Kazakh.
	assert.Contains(t, draft.SuggestedReply, "Қайырлы күн")
}

func TestIngestExplicitLanguageOverride(t *testing.T) {
	s := newPipeline(t)

	outcome := s.Ingest(context.Background(), model.IngestRequest{
		Text:     "нужен доступ к общей папке",
		Language: model.LanguageKazakh,
	})

	draft, ok := outcome.(model.TicketDraft)
	require.True(t, ok, "expected TicketDraft, got %T", outcome)
	assert.Equal(t, model.LanguageKazakh, draft.Language)
}

func TestIngestTotality(t *testing.T) {
	s := newPipeline(t)

	tests := []struct {
		name string
		text string
	}{
		{"empty text", ""},
		{"whitespace only", "   "},
		{"latin text", "hello there"},
		{"punctuation only", "???!!!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := s.Ingest(context.Background(), model.IngestRequest{Text: tt.text})

			draft, ok := outcome.(model.TicketDraft)
			require.True(t, ok, "expected TicketDraft, got %T", outcome)
			assert.NotEmpty(t, draft.Category)
			assert.NotEmpty(t, draft.Priority)
			assert.NotEmpty(t, draft.Department)
			assert.NotEmpty(t, draft.SuggestedReply)
		})
	}
}

func TestHelp(t *testing.T) {
	s := newPipeline(t)

	t.Run("faq hit returned as solution", func(t *testing.T) {
		resp := s.Help(context.Background(), model.IngestRequest{Text: "Как сменить пароль?"})

		assert.True(t, resp.HasFAQ)
		assert.Contains(t, resp.Solution, "portal.company.com")
		assert.Equal(t, model.LanguageRussian, resp.Language)
	})

	t.Run("no faq hit falls back to a synthesized reply", func(t *testing.T) {
		resp := s.Help(context.Background(), model.IngestRequest{Text: "у меня сломался принтер срочно"})

		assert.False(t, resp.HasFAQ)
		assert.Equal(t, replyTemplates[model.CategoryHardware], resp.Solution)
		assert.Equal(t, model.CategoryHardware, resp.Category)
		assert.Equal(t, model.PriorityCritical, resp.Priority)
	})

	t.Run("kazakh solution translated toward kazakh", func(t *testing.T) {
		resp := s.Help(context.Background(), model.IngestRequest{Text: "бағдарлама орнату керек"})

		assert.Equal(t, model.LanguageKazakh, resp.Language)
		assert.False(t, strings.TrimSpace(resp.Solution) == "")
	})
}
