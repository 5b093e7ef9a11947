package service

import (
	"context"
	"strings"
	"time"

	"github.com/onewindow/helpdesk-go/internal/model"
	"github.com/onewindow/helpdesk-go/internal/oracle"
	"go.uber.org/zap"
)

// kazakhPhrases fixed phrase replacements used when the oracle is
// unavailable. Best effort only: a bilingual operator can act on
// untranslated text.
var kazakhPhrases = map[string]string{
	"Здравствуйте":      "Сәлеметсіз бе",
	"Добрый день":       "Қайырлы күн",
	"Ваш запрос принят": "Сіздің сұранысыңыз қабылданды",
	"Спасибо":           "Рақмет",
	"До свидания":       "Сау болыңыз",
}

// TranslateService best-effort Kazakh/Russian translation. Both directions
// always return usable text; total failure of the oracle returns the input
// unchanged and never surfaces an error to the caller.
type TranslateService struct {
	oracle  oracle.Oracle
	timeout time.Duration
	logger  *zap.Logger
}

// NewTranslateService creates a translate service.
func NewTranslateService(o oracle.Oracle, timeout time.Duration, logger *zap.Logger) *TranslateService {
	return &TranslateService{
		oracle:  o,
		timeout: timeout,
		logger:  logger,
	}
}

// ToRussian translates Kazakh text to Russian for internal processing.
func (s *TranslateService) ToRussian(ctx context.Context, text string) string {
	if translated, ok := s.oracleTranslate(ctx, text, "русский"); ok {
		return translated
	}
	return text
}

// ToKazakh translates an outgoing answer toward Kazakh.
func (s *TranslateService) ToKazakh(ctx context.Context, text string) string {
	if translated, ok := s.oracleTranslate(ctx, text, "казахский"); ok {
		return translated
	}

	// Phrase-level fallback
	result := text
	for ru, kz := range kazakhPhrases {
		result = strings.ReplaceAll(result, ru, kz)
	}
	return result
}

// Translate converts text toward the target language. Russian targets get
// the to-Russian path, everything else the to-Kazakh path.
func (s *TranslateService) Translate(ctx context.Context, text string, target model.Language) string {
	if target == model.LanguageKazakh {
		return s.ToKazakh(ctx, text)
	}
	return s.ToRussian(ctx, text)
}

func (s *TranslateService) oracleTranslate(ctx context.Context, text, targetName string) (string, bool) {
	if s.oracle == nil || strings.TrimSpace(text) == "" {
		return "", false
	}

	prompt := "Переведи текст на " + targetName + " язык. Верни только перевод, без пояснений.\n" +
		"Текст: " + text

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	translated, err := s.oracle.Complete(ctx, prompt, 0, 500)
	if err != nil {
		s.logger.Warn("oracle translation failed, returning text unchanged", zap.Error(err))
		return "", false
	}
	if strings.TrimSpace(translated) == "" {
		return "", false
	}

	return strings.TrimSpace(translated), true
}
