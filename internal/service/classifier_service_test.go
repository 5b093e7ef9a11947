package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/onewindow/helpdesk-go/internal/model"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// stubOracle canned oracle for tests
type stubOracle struct {
	response string
	err      error
}

func (s stubOracle) Complete(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	return s.response, s.err
}

func newFallbackClassifier() *ClassifierService {
	return NewClassifierService(nil, time.Second, zap.NewNop())
}

func TestClassifyCategoryFallback(t *testing.T) {
	s := newFallbackClassifier()
	ctx := context.Background()

	t.Run("vpn keywords", func(t *testing.T) {
		assert.Equal(t, model.CategoryVPN, s.ClassifyCategory(ctx, "Как подключиться к VPN?"))
	})

	t.Run("hardware keywords", func(t *testing.T) {
		assert.Equal(t, model.CategoryHardware, s.ClassifyCategory(ctx, "у меня сломался принтер срочно"))
	})

	t.Run("email keywords", func(t *testing.T) {
		assert.Equal(t, model.CategoryEmail, s.ClassifyCategory(ctx, "не открывается outlook"))
	})

	t.Run("kazakh keywords", func(t *testing.T) {
		assert.Equal(t, model.CategorySoftware, s.ClassifyCategory(ctx, "бағдарлама орнату керек"))
	})

	t.Run("no keywords yields Other", func(t *testing.T) {
		assert.Equal(t, model.CategoryOther, s.ClassifyCategory(ctx, "абракадабра"))
		assert.Equal(t, model.CategoryOther, s.ClassifyCategory(ctx, ""))
	})

	t.Run("deterministic", func(t *testing.T) {
		text := "нужен доступ к общей папке и пароль"
		first := s.ClassifyCategory(ctx, text)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, s.ClassifyCategory(ctx, text))
		}
	})
}

func TestClassifyPriorityFallback(t *testing.T) {
	s := newFallbackClassifier()
	ctx := context.Background()

	t.Run("critical keywords", func(t *testing.T) {
		assert.Equal(t, model.PriorityCritical, s.ClassifyPriority(ctx, "срочно! ничего не работает"))
		assert.Equal(t, model.PriorityCritical, s.ClassifyPriority(ctx, "компьютер сломался"))
	})

	t.Run("critical outranks low", func(t *testing.T) {
		// "как" is a low-priority keyword, "срочно" is critical
		assert.Equal(t, model.PriorityCritical, s.ClassifyPriority(ctx, "как срочно починить принтер"))
	})

	t.Run("high keywords", func(t *testing.T) {
		assert.Equal(t, model.PriorityHigh, s.ClassifyPriority(ctx, "важно: ошибка при входе"))
	})

	t.Run("low keywords", func(t *testing.T) {
		assert.Equal(t, model.PriorityLow, s.ClassifyPriority(ctx, "вопрос по настройке"))
	})

	t.Run("default medium", func(t *testing.T) {
		assert.Equal(t, model.PriorityMedium, s.ClassifyPriority(ctx, "принтер печатает бледно"))
		assert.Equal(t, model.PriorityMedium, s.ClassifyPriority(ctx, ""))
	})
}

func TestClassifyWithOracle(t *testing.T) {
	ctx := context.Background()

	t.Run("valid category label accepted", func(t *testing.T) {
		s := NewClassifierService(stubOracle{response: "Network"}, time.Second, zap.NewNop())
		assert.Equal(t, model.CategoryNetwork, s.ClassifyCategory(ctx, "у меня сломался принтер"))
	})

	t.Run("label outside the set falls back to keywords", func(t *testing.T) {
		s := NewClassifierService(stubOracle{response: "Printers"}, time.Second, zap.NewNop())
		assert.Equal(t, model.CategoryHardware, s.ClassifyCategory(ctx, "у меня сломался принтер"))
	})

	t.Run("oracle error falls back to keywords", func(t *testing.T) {
		s := NewClassifierService(stubOracle{err: errors.New("timeout")}, time.Second, zap.NewNop())
		assert.Equal(t, model.CategoryVPN, s.ClassifyCategory(ctx, "vpn не подключается"))
	})

	t.Run("priority matched case-insensitively", func(t *testing.T) {
		s := NewClassifierService(stubOracle{response: " CRITICAL \n"}, time.Second, zap.NewNop())
		assert.Equal(t, model.PriorityCritical, s.ClassifyPriority(ctx, "вопрос"))
	})

	t.Run("unknown priority falls back to keywords", func(t *testing.T) {
		s := NewClassifierService(stubOracle{response: "urgent"}, time.Second, zap.NewNop())
		assert.Equal(t, model.PriorityLow, s.ClassifyPriority(ctx, "вопрос по настройке"))
	})
}
