package service

import (
	"context"
	"strings"
	"time"

	"github.com/onewindow/helpdesk-go/internal/model"
	"github.com/onewindow/helpdesk-go/internal/oracle"
	"go.uber.org/zap"
)

// categoryKeywords keyword stems per category, Russian and Kazakh
// spellings. Scored against lowercased text; the order of model.Categories
// breaks ties.
var categoryKeywords = map[string][]string{
	model.CategoryVPN:      {"vpn", "впн", "подключ", "қосыл", "сеть", "желі"},
	model.CategoryEmail:    {"почт", "email", "outlook", "пошта", "хат", "письмо"},
	model.CategoryHardware: {"принтер", "принтір", "компьютер", "мышь", "клавиатур", "монитор", "пернетақта"},
	model.CategorySoftware: {"программ", "прилож", "софт", "бағдарлама", "қосымша", "установ", "орнату"},
	model.CategoryAccess:   {"доступ", "рұқсат", "қатынау", "пароль", "құпия", "права", "папк", "қалта"},
	model.CategoryNetwork:  {"интернет", "сеть", "желі", "wifi", "вай-фай", "подключен", "байланыс"},
}

// Priority keyword tiers, checked in precedence order:
// critical > high > low > default medium.
var (
	criticalKeywords = []string{"срочно", "критично", "не работает", "сломал", "авария", "шұғыл", "жұмыс істемейді", "апат"}
	highKeywords     = []string{"важно", "проблема", "ошибка", "маңызды", "мәселе", "қате", "помогите", "көмектесіңіз"}
	lowKeywords      = []string{"вопрос", "как", "можно", "сұрақ", "қалай", "болады ма"}
)

// ClassifierService category and priority classification. The oracle is an
// optional quality enhancement; the keyword fallback always produces a value.
type ClassifierService struct {
	oracle  oracle.Oracle
	timeout time.Duration
	logger  *zap.Logger
}

// NewClassifierService creates a classifier service. A nil oracle disables
// the LLM path entirely.
func NewClassifierService(o oracle.Oracle, timeout time.Duration, logger *zap.Logger) *ClassifierService {
	return &ClassifierService{
		oracle:  o,
		timeout: timeout,
		logger:  logger,
	}
}

// ClassifyCategory returns one label from the closed category set.
// Never fails: any oracle error degrades to keyword scoring.
func (s *ClassifierService) ClassifyCategory(ctx context.Context, text string) string {
	if s.oracle != nil {
		if label, ok := s.oracleCategory(ctx, text); ok {
			return label
		}
	}
	return keywordCategory(text)
}

// ClassifyPriority returns one of the four priority levels.
// Never fails: any oracle error degrades to keyword tiers.
func (s *ClassifierService) ClassifyPriority(ctx context.Context, text string) model.Priority {
	if s.oracle != nil {
		if priority, ok := s.oraclePriority(ctx, text); ok {
			return priority
		}
	}
	return keywordPriority(text)
}

// oracleCategory asks the oracle for a category label. The answer is
// accepted only when it matches the closed set verbatim.
func (s *ClassifierService) oracleCategory(ctx context.Context, text string) (string, bool) {
	prompt := "Определи категорию обращения в службу поддержки.\n" +
		"Обращение: " + text + "\n\n" +
		"Возможные категории: " + strings.Join(model.Categories, ", ") + "\n" +
		"Ответь ровно одним словом - названием категории из списка."

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	response, err := s.oracle.Complete(ctx, prompt, 0, 10)
	if err != nil {
		s.logger.Warn("oracle category classification failed, using keyword fallback", zap.Error(err))
		return "", false
	}

	label := strings.TrimSpace(response)
	if !model.ValidCategory(label) {
		s.logger.Warn("oracle returned label outside the category set",
			zap.String("label", label))
		return "", false
	}

	return label, true
}

// oraclePriority asks the oracle for a priority level, matched
// case-insensitively against the four known levels.
func (s *ClassifierService) oraclePriority(ctx context.Context, text string) (model.Priority, bool) {
	prompt := "Определи приоритет обращения в службу поддержки.\n" +
		"Обращение: " + text + "\n\n" +
		"Возможные приоритеты: low, medium, high, critical.\n" +
		"Ответь ровно одним словом."

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	response, err := s.oracle.Complete(ctx, prompt, 0, 10)
	if err != nil {
		s.logger.Warn("oracle priority classification failed, using keyword fallback", zap.Error(err))
		return "", false
	}

	label := strings.ToLower(strings.TrimSpace(response))
	for _, p := range model.Priorities {
		if label == string(p) {
			return p, true
		}
	}

	s.logger.Warn("oracle returned unknown priority", zap.String("label", label))
	return "", false
}

// keywordCategory keyword scoring: the category whose keyword stems appear
// most often wins, ties go to the first-declared category, zero hits mean
// Other.
func keywordCategory(text string) string {
	textLower := strings.ToLower(text)

	bestCategory := model.CategoryOther
	bestScore := 0

	for _, category := range model.Categories {
		score := 0
		for _, word := range categoryKeywords[category] {
			if strings.Contains(textLower, word) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			bestCategory = category
		}
	}

	return bestCategory
}

// keywordPriority tiered keyword check in precedence order.
func keywordPriority(text string) model.Priority {
	textLower := strings.ToLower(text)

	for _, word := range criticalKeywords {
		if strings.Contains(textLower, word) {
			return model.PriorityCritical
		}
	}
	for _, word := range highKeywords {
		if strings.Contains(textLower, word) {
			return model.PriorityHigh
		}
	}
	for _, word := range lowKeywords {
		if strings.Contains(textLower, word) {
			return model.PriorityLow
		}
	}

	return model.PriorityMedium
}
