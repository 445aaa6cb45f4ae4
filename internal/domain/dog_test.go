package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemperamentTags(t *testing.T) {
	temperament := " Joueur, calme ,JOUEUR,, sociable "
	d := &Dog{Temperament: &temperament}

	tags := d.TemperamentTags()
	assert.Len(t, tags, 3)
	assert.Contains(t, tags, "joueur")
	assert.Contains(t, tags, "calme")
	assert.Contains(t, tags, "sociable")

	assert.Empty(t, (&Dog{}).TemperamentTags())
}

func TestActivityIndex(t *testing.T) {
	high := "high"
	unknown := "hyper"

	assert.Equal(t, 2, (&Dog{ActivityLevel: &high}).ActivityIndex())
	assert.Equal(t, -1, (&Dog{}).ActivityIndex())
	assert.Equal(t, -1, (&Dog{ActivityLevel: &unknown}).ActivityIndex())
}
