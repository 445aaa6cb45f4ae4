package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalPair(t *testing.T) {
	a, b := CanonicalPair(20, 10)
	assert.Equal(t, 10, a)
	assert.Equal(t, 20, b)

	a, b = CanonicalPair(10, 20)
	assert.Equal(t, 10, a)
	assert.Equal(t, 20, b)
}

func TestMatchOtherDogID(t *testing.T) {
	m := &Match{Dog1ID: 10, Dog2ID: 20}

	other, ok := m.OtherDogID(10)
	assert.True(t, ok)
	assert.Equal(t, 20, other)

	other, ok = m.OtherDogID(20)
	assert.True(t, ok)
	assert.Equal(t, 10, other)

	_, ok = m.OtherDogID(30)
	assert.False(t, ok)

	assert.True(t, m.HasDog(10))
	assert.False(t, m.HasDog(30))
}
