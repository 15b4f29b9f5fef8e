package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInRange(t *testing.T) {
	assert.True(t, IsInRange(1, 1, 64))
	assert.True(t, IsInRange(1, 64, 64))
	assert.False(t, IsInRange(1, 0, 64))
	assert.False(t, IsInRange(1, 65, 64))
	assert.True(t, IsInRange[uint64](0, 7, 7))
}

func TestIsDecimal(t *testing.T) {
	assert.True(t, IsDecimal("0"))
	assert.True(t, IsDecimal("064"))
	assert.False(t, IsDecimal(""))
	assert.False(t, IsDecimal("+5"))
	assert.False(t, IsDecimal("3a"))
	assert.False(t, IsDecimal("1_0"))
}
