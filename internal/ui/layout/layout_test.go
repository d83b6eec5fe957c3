package layout

import (
	"testing"

	"charm.land/bubbles/v2/key"
	"github.com/stretchr/testify/assert"
)

func TestHintsFrom(t *testing.T) {
	on := key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "Predict"))
	off := key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "Learn more"), key.WithDisabled())

	hints := HintsFrom(on, off)
	assert.Equal(t, []KeyHint{{Key: "p", Description: "Predict"}}, hints)
}

func TestContentHeight(t *testing.T) {
	assert.Equal(t, 24-HeaderHeight-FooterHeight, ContentHeight(24))
	assert.Equal(t, 0, ContentHeight(2))
}

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(MinWidth-1, MinHeight))
	assert.False(t, IsTooSmall(MinWidth, MinHeight))
}
