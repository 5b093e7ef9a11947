package service

import (
	"strings"

	"github.com/onewindow/helpdesk-go/internal/model"
)

// kazakhLetters the nine Kazakh letters absent from Russian, both cases
const kazakhLetters = "әғқңөұүһіӘҒҚҢӨҰҮҺІ"

// DetectLanguage classifies text as Kazakh or Russian. Any Kazakh-specific
// letter wins; everything else, including non-Cyrillic and empty input,
// resolves to Russian. Total over any string.
func DetectLanguage(text string) model.Language {
	for _, r := range text {
		if strings.ContainsRune(kazakhLetters, r) {
			return model.LanguageKazakh
		}
	}
	return model.LanguageRussian
}
