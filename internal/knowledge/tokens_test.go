package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	t.Run("lowercases and strips punctuation", func(t *testing.T) {
		tokens := Tokenize("Как подключиться к VPN?")
		assert.Len(t, tokens, 4)
		assert.Contains(t, tokens, "vpn")
		assert.Contains(t, tokens, "подключиться")
	})

	t.Run("deduplicates", func(t *testing.T) {
		tokens := Tokenize("сеть сеть СЕТЬ")
		assert.Len(t, tokens, 1)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Tokenize(""))
		assert.Empty(t, Tokenize("!!! ... ???"))
	})
}

func TestCosineSimilarity(t *testing.T) {
	t.Run("identical text scores one", func(t *testing.T) {
		assert.InDelta(t, 1.0, CosineSimilarity("не работает почта", "не работает почта"), 1e-9)
	})

	t.Run("case and punctuation insensitive", func(t *testing.T) {
		assert.InDelta(t, 1.0, CosineSimilarity("Как подключиться к VPN?", "как подключиться к vpn"), 1e-9)
	})

	t.Run("no overlap scores zero", func(t *testing.T) {
		assert.Zero(t, CosineSimilarity("принтер сломался", "настройка почты"))
	})

	t.Run("empty side scores zero", func(t *testing.T) {
		assert.Zero(t, CosineSimilarity("", "что-то"))
		assert.Zero(t, CosineSimilarity("что-то", ""))
	})

	t.Run("bounded by zero and one", func(t *testing.T) {
		pairs := [][2]string{
			{"как сменить пароль", "пароль от компьютера"},
			{"vpn не подключается", "как подключиться к vpn"},
			{"a b c d", "a"},
		}
		for _, p := range pairs {
			score := CosineSimilarity(p[0], p[1])
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		}
	})

	t.Run("partial overlap", func(t *testing.T) {
		// {проблемы, с, принтером} vs {проблемы, с, монитором}: 2/(sqrt(3)*sqrt(3))
		assert.InDelta(t, 2.0/3.0, CosineSimilarity("проблемы с принтером", "проблемы с монитором"), 1e-9)
	})
}
