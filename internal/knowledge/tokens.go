package knowledge

import (
	"math"
	"strings"
	"unicode"
)

// Tokenize lowercases the text, strips punctuation and splits on
// whitespace, returning the deduplicated token set.
func Tokenize(text string) map[string]struct{} {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)

	tokens := make(map[string]struct{})
	for _, tok := range strings.Fields(cleaned) {
		tokens[tok] = struct{}{}
	}
	return tokens
}

// CosineSimilarity token-set cosine between two texts:
// |intersection| / (sqrt(|A|) * sqrt(|B|)), 0 when either set is empty.
func CosineSimilarity(text1, text2 string) float64 {
	tokens1 := Tokenize(text1)
	tokens2 := Tokenize(text2)

	if len(tokens1) == 0 || len(tokens2) == 0 {
		return 0
	}

	intersection := 0
	for tok := range tokens1 {
		if _, ok := tokens2[tok]; ok {
			intersection++
		}
	}

	if intersection == 0 {
		return 0
	}

	return float64(intersection) / (math.Sqrt(float64(len(tokens1))) * math.Sqrt(float64(len(tokens2))))
}
