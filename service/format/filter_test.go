package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuppressor(t *testing.T) {
	suppressor := NewSuppressor(true)

	t.Run("enabled drops warning chunks entirely", func(t *testing.T) {
		assert.False(t, suppressor.Keep("FutureWarning: use of chained assignment"))
		assert.False(t, suppressor.Keep("Warning: something"))
		assert.False(t, suppressor.Keep("see the pandas documentation"))
		assert.True(t, suppressor.Keep("regular output"))
	})

	t.Run("disabled keeps everything", func(t *testing.T) {
		suppressor.SetEnabled(false)
		defer suppressor.SetEnabled(true)
		assert.True(t, suppressor.Keep("FutureWarning: use of chained assignment"))
	})

	t.Run("filter removes only matching chunks", func(t *testing.T) {
		chunks := []string{"hi", "DeprecationWarning: old api", "bye"}
		assert.Equal(t, []string{"hi", "bye"}, suppressor.Filter(chunks))
	})
}
