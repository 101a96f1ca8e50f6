package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeaturesStatic(t *testing.T) {
	features := Features()
	require.Len(t, features, 4)
	assert.Equal(t, "Sleep meditation", features[0].Title)
	assert.Equal(t, IconVideocam, features[1].Icon)
	assert.Equal(t, OrangeYellow1, features[2].DarkColor)
	assert.Equal(t, Beige3, features[3].LightColor)

	features[0].Title = "changed"
	assert.Equal(t, "Sleep meditation", Features()[0].Title)
}

func TestChipLabels(t *testing.T) {
	assert.Equal(t, []string{"Sweet Sleep", "Insomnia", "Depression"}, ChipLabels)
}
