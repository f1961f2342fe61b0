package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIconKey_GlyphSoftDefault(t *testing.T) {
	assert.Equal(t, "💬", IconMessageSquare.Glyph())
	assert.Equal(t, "⚡", IconZap.Glyph())

	// Unknown keys never fail, they fall back to the generic glyph.
	assert.Equal(t, IconGeneric.Glyph(), IconKey("sparkle-9000").Glyph())
	assert.Equal(t, IconGeneric.Glyph(), IconKey("").Glyph())
}

func TestIconKey_Known(t *testing.T) {
	assert.True(t, IconGeneric.Known())
	assert.True(t, IconBot.Known())
	assert.False(t, IconKey("sparkle-9000").Known())
	assert.False(t, IconKey("").Known())
}
