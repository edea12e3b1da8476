package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory_EmptyMeansMain(t *testing.T) {
	c, err := ParseCategory("")
	assert.NoError(t, err)
	assert.Equal(t, CategoryMain, c)
}

func TestParseCategory_KnownValues(t *testing.T) {
	for _, known := range Categories() {
		c, err := ParseCategory(known.String())
		assert.NoError(t, err)
		assert.Equal(t, known, c)
	}
}

func TestParseCategory_Unknown(t *testing.T) {
	_, err := ParseCategory("basement")
	assert.Error(t, err)

	_, err = ParseCategory("MAIN")
	assert.Error(t, err)
}

func TestCategoryIsValid(t *testing.T) {
	assert.True(t, CategoryLifelineElectrical.IsValid())
	assert.False(t, Category("").IsValid())
	assert.False(t, Category("something_else").IsValid())
}
