package usage_test

import (
	"sync"
	"testing"

	"github.com/pcurrier/imitator/pkg/modeladapter/usage"

	"github.com/stretchr/testify/assert"
)

func TestTracker_ZeroValue(t *testing.T) {
	var tr usage.Tracker

	assert.Equal(t, 0, tr.Calls())
	assert.Equal(t, usage.TokenCount{}, tr.Total())

	_, ok := tr.Last()
	assert.False(t, ok)
}

func TestTracker_Add(t *testing.T) {
	var tr usage.Tracker

	tr.Add(usage.TokenCount{InputTokens: 10, OutputTokens: 5})
	tr.Add(usage.TokenCount{InputTokens: 3, OutputTokens: 2})

	assert.Equal(t, 2, tr.Calls())
	assert.Equal(t, usage.TokenCount{InputTokens: 13, OutputTokens: 7}, tr.Total())

	last, ok := tr.Last()
	assert.True(t, ok)
	assert.Equal(t, usage.TokenCount{InputTokens: 3, OutputTokens: 2}, last)
}

func TestTokenCount_Total(t *testing.T) {
	tc := usage.TokenCount{InputTokens: 4, OutputTokens: 6}
	assert.Equal(t, 10, tc.Total())
}

func TestTracker_Reset(t *testing.T) {
	var tr usage.Tracker

	tr.Add(usage.TokenCount{InputTokens: 1, OutputTokens: 1})
	tr.Reset()

	assert.Equal(t, 0, tr.Calls())
	assert.Equal(t, usage.TokenCount{}, tr.Total())

	_, ok := tr.Last()
	assert.False(t, ok)
}

func TestTracker_ConcurrentAdd(t *testing.T) {
	var tr usage.Tracker

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.Add(usage.TokenCount{InputTokens: 1, OutputTokens: 2})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, tr.Calls())
	assert.Equal(t, usage.TokenCount{InputTokens: 50, OutputTokens: 100}, tr.Total())
}
