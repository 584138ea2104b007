package prefers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromValue(t *testing.T) {
	tests := []struct {
		value string
		dark  bool
		ok    bool
	}{
		{"dark", true, true},
		{" Dark ", true, true},
		{"light", false, true},
		{"", false, false},
		{"solarized", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			dark, ok := FromValue(tt.value).PrefersDark()
			assert.Equal(t, tt.dark, dark)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestFirst(t *testing.T) {
	dark, ok := First(nil, Unavailable(), Static(true), Static(false)).PrefersDark()
	assert.True(t, ok)
	assert.True(t, dark)

	_, ok = First(Unavailable(), FromValue("")).PrefersDark()
	assert.False(t, ok)
}

func TestStatic(t *testing.T) {
	dark, ok := Static(false).PrefersDark()
	assert.True(t, ok)
	assert.False(t, dark)
}
