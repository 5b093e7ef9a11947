package service

import (
	"context"
	"strings"
	"time"

	"github.com/onewindow/helpdesk-go/internal/model"
	"github.com/onewindow/helpdesk-go/internal/oracle"
	"go.uber.org/zap"
)

// summaryWordLimit fallback summary length in whitespace-delimited tokens
const summaryWordLimit = 15

// replyTemplates fixed per-category replies used when the oracle is
// unavailable and no FAQ answer qualifies
var replyTemplates = map[string]string{
	model.CategoryVPN:      "Здравствуйте! Для решения вашего вопроса с VPN, пожалуйста, попробуйте следующее: проверьте подключение к интернету, перезапустите VPN-клиент. Если проблема сохраняется, сообщите нам.",
	model.CategoryEmail:    "Добрый день! Мы получили ваш запрос по электронной почте. Проверьте, пожалуйста, настройки Outlook и попробуйте перезапустить приложение.",
	model.CategoryHardware: "Здравствуйте! Ваш запрос принят. Специалист технической поддержки свяжется с вами в ближайшее время для решения проблемы с оборудованием.",
	model.CategorySoftware: "Добрый день! Для установки или настройки программного обеспечения, пожалуйста, уточните версию ОС и название программы. Мы поможем вам в ближайшее время.",
	model.CategoryAccess:   "Здравствуйте! Ваш запрос на предоставление доступа принят. После согласования с руководителем мы настроим необходимые права.",
	model.CategoryNetwork:  "Добрый день! Проверьте подключение к сети, перезагрузите роутер. Если проблема не решена, мы направим специалиста.",
	model.CategoryOther:    "Здравствуйте! Ваше обращение принято. Мы рассмотрим его и свяжемся с вами в ближайшее время.",
}

// ReplyService summary and suggested-reply synthesis
type ReplyService struct {
	oracle  oracle.Oracle
	timeout time.Duration
	logger  *zap.Logger
}

// NewReplyService creates a reply service. A nil oracle means templates
// and truncation only.
func NewReplyService(o oracle.Oracle, timeout time.Duration, logger *zap.Logger) *ReplyService {
	return &ReplyService{
		oracle:  o,
		timeout: timeout,
		logger:  logger,
	}
}

// Summarize produces a short summary of the request. Oracle-backed when
// available, else truncated to the first 15 words.
func (s *ReplyService) Summarize(ctx context.Context, text string) string {
	if s.oracle != nil {
		prompt := "Составь краткое содержание обращения в службу поддержки в одном-двух предложениях.\n" +
			"Обращение: " + text

		ctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		summary, err := s.oracle.Complete(ctx, prompt, 0.3, 100)
		if err == nil && strings.TrimSpace(summary) != "" {
			return strings.TrimSpace(summary)
		}
		if err != nil {
			s.logger.Warn("oracle summary failed, using truncation fallback", zap.Error(err))
		}
	}

	return truncateSummary(text)
}

// SuggestReply produces a reply for the operator (or the requester, on the
// instant-help path). A qualifying FAQ answer is returned verbatim:
// source-of-truth answers must not pass through the oracle.
func (s *ReplyService) SuggestReply(ctx context.Context, text, category, faqAnswer string) string {
	if faqAnswer != "" {
		return faqAnswer
	}

	if s.oracle != nil {
		prompt := "Составь вежливый ответ на русском языке на обращение в службу IT-поддержки.\n" +
			"Категория: " + category + "\n" +
			"Обращение: " + text

		ctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		reply, err := s.oracle.Complete(ctx, prompt, 0.7, 300)
		if err == nil && strings.TrimSpace(reply) != "" {
			return strings.TrimSpace(reply)
		}
		if err != nil {
			s.logger.Warn("oracle reply failed, using template fallback", zap.Error(err))
		}
	}

	if tpl, ok := replyTemplates[category]; ok {
		return tpl
	}
	return replyTemplates[model.CategoryOther]
}

// truncateSummary keeps the first summaryWordLimit words of the text,
// appending an ellipsis when something was cut.
func truncateSummary(text string) string {
	words := strings.Fields(text)
	if len(words) <= summaryWordLimit {
		return text
	}
	return strings.Join(words[:summaryWordLimit], " ") + "..."
}
