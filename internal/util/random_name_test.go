package util

import (
	"strings"
	"testing"

	"drawpoker-server/internal/rng"
	"github.com/stretchr/testify/assert"
)

func TestGetRandomName(t *testing.T) {
	orig := random
	defer func() { random = orig }()

	random = rng.NewSeeded(0)
	first := []string{GetRandomName(), GetRandomName()}

	random = rng.NewSeeded(0)
	assert.Equal(t, first, []string{GetRandomName(), GetRandomName()})

	parts := strings.Fields(first[0])
	if assert.Len(t, parts, 2) {
		assert.Contains(t, adjectives, parts[0])
		assert.Contains(t, animals, parts[1])
	}
}
