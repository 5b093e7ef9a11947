package service

import (
	"testing"

	"github.com/onewindow/helpdesk-go/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	t.Run("empty string defaults to russian", func(t *testing.T) {
		assert.Equal(t, model.LanguageRussian, DetectLanguage(""))
	})

	t.Run("kazakh letters win", func(t *testing.T) {
		assert.Equal(t, model.LanguageKazakh, DetectLanguage("құпия сөз"))
		assert.Equal(t, model.LanguageKazakh, DetectLanguage("бағдарлама орнату"))
	})

	t.Run("russian text", func(t *testing.T) {
		assert.Equal(t, model.LanguageRussian, DetectLanguage("привет"))
		assert.Equal(t, model.LanguageRussian, DetectLanguage("не работает принтер"))
	})

	t.Run("single kazakh letter in russian text wins", func(t *testing.T) {
		assert.Equal(t, model.LanguageKazakh, DetectLanguage("привет қалайсыз"))
	})

	t.Run("non-cyrillic defaults to russian", func(t *testing.T) {
		assert.Equal(t, model.LanguageRussian, DetectLanguage("hello world"))
		assert.Equal(t, model.LanguageRussian, DetectLanguage("12345 !!!"))
	})

	t.Run("uppercase kazakh letters", func(t *testing.T) {
		assert.Equal(t, model.LanguageKazakh, DetectLanguage("ҚАЗАҚША"))
	})
}
