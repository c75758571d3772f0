package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCategory(t *testing.T) {
	for _, category := range Categories {
		assert.True(t, IsValidCategory(category.Value))
	}

	assert.False(t, IsValidCategory(""))
	assert.False(t, IsValidCategory(CategoryAll), "the filter wildcard is not a real category")
	assert.False(t, IsValidCategory("Music"))
}
