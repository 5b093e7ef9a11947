package knowledge

import (
	"fmt"
	"os"
	"sync"

	"github.com/onewindow/helpdesk-go/internal/model"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Entry one canonical question/answer pair
type Entry struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Store per-language FAQ knowledge base. Entries are loaded once at
// startup and read-only afterwards; Match is safe for concurrent use.
type Store struct {
	bases  map[model.Language][]Entry // language -> ordered entries
	mu     sync.RWMutex
	logger *zap.Logger
}

// answerWeight weight applied to answer-side similarity: overlap with a
// long answer is a weaker signal than overlap with the short question.
const answerWeight = 0.5

// NewStore creates an empty knowledge store.
func NewStore(logger *zap.Logger) *Store {
	return &Store{
		bases:  make(map[model.Language][]Entry),
		logger: logger,
	}
}

// SetEntries replaces the knowledge base for a language.
func (s *Store) SetEntries(lang model.Language, entries []Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bases[lang] = entries
	s.logger.Info("knowledge base loaded",
		zap.String("language", string(lang)),
		zap.Int("entries", len(entries)))
}

// LoadFile loads per-language entries from a yaml file of the form
// {ru: [{question, answer}, ...], kz: [...]}.
func (s *Store) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read knowledge base file: %w", err)
	}

	var bases map[model.Language][]Entry
	if err := yaml.Unmarshal(data, &bases); err != nil {
		return fmt.Errorf("parse knowledge base file: %w", err)
	}

	for lang, entries := range bases {
		s.SetEntries(lang, entries)
	}
	return nil
}

// Count returns the number of entries for a language.
func (s *Store) Count(lang model.Language) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bases[lang])
}

// Match scores the text against every entry in the knowledge base for the
// given language (falling back to Russian when that base is empty) and
// returns the best hit. An entry's score is the max of its question-side
// similarity and its answer-side similarity at half weight. Ties keep the
// first-declared entry.
func (s *Store) Match(text string, lang model.Language) model.MatchResult {
	s.mu.RLock()
	base, ok := s.bases[lang]
	if !ok || len(base) == 0 {
		base = s.bases[model.LanguageRussian]
	}
	s.mu.RUnlock()

	var best *Entry
	bestScore := 0.0

	for i := range base {
		entry := &base[i]
		scoreQ := CosineSimilarity(text, entry.Question)
		scoreA := CosineSimilarity(text, entry.Answer) * answerWeight

		score := scoreQ
		if scoreA > score {
			score = scoreA
		}

		if score > bestScore {
			bestScore = score
			best = entry
		}
	}

	if best == nil {
		return model.MatchResult{Similarity: 0}
	}

	s.logger.Debug("knowledge base match",
		zap.String("language", string(lang)),
		zap.String("question", best.Question),
		zap.Float64("similarity", bestScore))

	return model.MatchResult{
		BestAnswer:   best.Answer,
		BestQuestion: best.Question,
		Similarity:   bestScore,
	}
}
