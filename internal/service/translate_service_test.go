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

func TestTranslateWithoutOracle(t *testing.T) {
	s := NewTranslateService(nil, time.Second, zap.NewNop())
	ctx := context.Background()

	t.Run("to russian returns text unchanged", func(t *testing.T) {
		text := "бағдарлама орнату керек"
		assert.Equal(t, text, s.ToRussian(ctx, text))
	})

	t.Run("to kazakh replaces known phrases", func(t *testing.T) {
		got := s.ToKazakh(ctx, "Здравствуйте! Ваш запрос принят.")
		assert.Equal(t, "Сәлеметсіз бе! Сіздің сұранысыңыз қабылданды.", got)
	})

	t.Run("to kazakh leaves unknown text unchanged", func(t *testing.T) {
		text := "Перезагрузите роутер."
		assert.Equal(t, text, s.ToKazakh(ctx, text))
	})

	t.Run("empty text stays empty", func(t *testing.T) {
		assert.Equal(t, "", s.ToRussian(ctx, ""))
		assert.Equal(t, "", s.ToKazakh(ctx, ""))
	})
}

func TestTranslateWithOracle(t *testing.T) {
	ctx := context.Background()

	t.Run("oracle translation preferred", func(t *testing.T) {
		s := NewTranslateService(stubOracle{response: "Сәлеметсіз бе!"}, time.Second, zap.NewNop())
		assert.Equal(t, "Сәлеметсіз бе!", s.ToKazakh(ctx, "Здравствуйте!"))
	})

	t.Run("oracle failure degrades to phrase fallback", func(t *testing.T) {
		s := NewTranslateService(stubOracle{err: errors.New("down")}, time.Second, zap.NewNop())
		assert.Equal(t, "Қайырлы күн!", s.ToKazakh(ctx, "Добрый день!"))
	})

	t.Run("blank oracle output degrades to input", func(t *testing.T) {
		s := NewTranslateService(stubOracle{response: "   "}, time.Second, zap.NewNop())
		text := "бағдарлама орнату керек"
		assert.Equal(t, text, s.ToRussian(ctx, text))
	})
}

func TestTranslateDispatch(t *testing.T) {
	s := NewTranslateService(nil, time.Second, zap.NewNop())
	ctx := context.Background()

	assert.Equal(t, "Рақмет", s.Translate(ctx, "Спасибо", model.LanguageKazakh))
	assert.Equal(t, "Спасибо", s.Translate(ctx, "Спасибо", model.LanguageRussian))
}
