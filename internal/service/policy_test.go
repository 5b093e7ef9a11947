package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAutoResolvePolicy(t *testing.T) {
	p := AutoResolvePolicy{Threshold: 0.85, SuggestThreshold: 0.7}

	t.Run("threshold boundary", func(t *testing.T) {
		assert.True(t, p.CanAutoResolve(0.85))
		assert.False(t, p.CanAutoResolve(0.8499))
	})

	t.Run("extremes", func(t *testing.T) {
		assert.True(t, p.CanAutoResolve(1.0))
		assert.False(t, p.CanAutoResolve(0.0))
	})

	t.Run("suggest threshold boundary", func(t *testing.T) {
		assert.True(t, p.Qualifies(0.7))
		assert.False(t, p.Qualifies(0.6999))
	})
}
