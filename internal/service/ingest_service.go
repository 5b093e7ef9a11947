package service

import (
	"context"
	"sync"

	"github.com/onewindow/helpdesk-go/internal/knowledge"
	"github.com/onewindow/helpdesk-go/internal/model"
	"go.uber.org/zap"
)

// IngestService the pipeline orchestrator: composes language detection,
// normalization, classification, knowledge-base matching, the auto-resolve
// decision and reply synthesis into one request -> outcome transformation.
// Every path terminates in a valid Outcome; component failures degrade
// locally and never abort the pipeline.
type IngestService struct {
	classifier *ClassifierService
	replies    *ReplyService
	translator *TranslateService
	knowledge  *knowledge.Store
	policy     AutoResolvePolicy
	logger     *zap.Logger
}

// NewIngestService creates the pipeline orchestrator.
func NewIngestService(
	classifier *ClassifierService,
	replies *ReplyService,
	translator *TranslateService,
	kb *knowledge.Store,
	policy AutoResolvePolicy,
	logger *zap.Logger,
) *IngestService {
	return &IngestService{
		classifier: classifier,
		replies:    replies,
		translator: translator,
		knowledge:  kb,
		policy:     policy,
		logger:     logger,
	}
}

// analysis intermediate pipeline state shared by Ingest and Help
type analysis struct {
	language   model.Language
	normalized string
	category   string
	priority   model.Priority
	department string
	match      model.MatchResult
}

// analyze runs the shared pipeline head: language resolution,
// normalization to the Russian working language, concurrent category and
// priority classification, and knowledge-base matching against the
// original-language base.
func (s *IngestService) analyze(ctx context.Context, text string, explicit model.Language) analysis {
	lang := explicit
	if lang != model.LanguageRussian && lang != model.LanguageKazakh {
		lang = DetectLanguage(text)
	}

	// Classification and matching work on the Russian working copy; the
	// keyword corpora and templates are keyed to it.
	normalized := text
	if lang == model.LanguageKazakh {
		normalized = s.translator.ToRussian(ctx, text)
	}

	// Category and priority classification are independent.
	var (
		category string
		priority model.Priority
		wg       sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		category = s.classifier.ClassifyCategory(ctx, normalized)
	}()
	go func() {
		defer wg.Done()
		priority = s.classifier.ClassifyPriority(ctx, normalized)
	}()
	wg.Wait()

	// Matching uses the base of the user's original language, not the
	// internal working copy; the store falls back to the Russian base when
	// no Kazakh base exists.
	match := s.knowledge.Match(normalized, lang)

	return analysis{
		language:   lang,
		normalized: normalized,
		category:   category,
		priority:   priority,
		department: model.DepartmentFor(category),
		match:      match,
	}
}

// Ingest transforms one support request into its terminal Outcome.
func (s *IngestService) Ingest(ctx context.Context, req model.IngestRequest) model.Outcome {
	s.logger.Info("ingest started",
		zap.Int("textLength", len(req.Text)),
		zap.String("explicitLanguage", string(req.Language)))

	a := s.analyze(ctx, req.Text, req.Language)
	summary := s.replies.Summarize(ctx, a.normalized)

	if s.policy.CanAutoResolve(a.match.Similarity) && a.match.BestAnswer != "" {
		answer := a.match.BestAnswer
		if a.language == model.LanguageKazakh {
			answer = s.translator.ToKazakh(ctx, answer)
		}

		s.logger.Info("ingest auto-resolved",
			zap.String("category", a.category),
			zap.Float64("similarity", a.match.Similarity))

		return model.AutoResolved{
			Answer:     answer,
			Category:   a.category,
			Priority:   a.priority,
			Department: a.department,
			Summary:    summary,
			Language:   a.language,
			Similarity: a.match.Similarity,
		}
	}

	// A weak match is no reply candidate: only answers clearing the
	// suggest threshold are offered verbatim.
	candidate := ""
	if s.policy.Qualifies(a.match.Similarity) {
		candidate = a.match.BestAnswer
	}

	suggested := s.replies.SuggestReply(ctx, a.normalized, a.category, candidate)
	if a.language == model.LanguageKazakh {
		suggested = s.translator.ToKazakh(ctx, suggested)
	}

	s.logger.Info("ingest produced ticket draft",
		zap.String("category", a.category),
		zap.String("priority", string(a.priority)),
		zap.String("department", a.department),
		zap.Float64("similarity", a.match.Similarity))

	return model.TicketDraft{
		Category:       a.category,
		Priority:       a.priority,
		Department:     a.department,
		Summary:        summary,
		SuggestedReply: suggested,
		Language:       a.language,
		Similarity:     a.match.Similarity,
	}
}

// Help runs the pipeline without persistence semantics: the best FAQ
// answer when one matched at all, otherwise a synthesized reply. Backs the
// instant-help endpoint.
func (s *IngestService) Help(ctx context.Context, req model.IngestRequest) model.AIHelpResponse {
	a := s.analyze(ctx, req.Text, req.Language)

	solution := ""
	hasFAQ := a.match.BestAnswer != "" && s.policy.Qualifies(a.match.Similarity)
	if hasFAQ {
		solution = a.match.BestAnswer
	} else {
		solution = s.replies.SuggestReply(ctx, a.normalized, a.category, "")
	}

	if a.language == model.LanguageKazakh {
		solution = s.translator.ToKazakh(ctx, solution)
	}

	return model.AIHelpResponse{
		Solution: solution,
		Category: a.category,
		Priority: a.priority,
		Language: a.language,
		HasFAQ:   hasFAQ,
	}
}
