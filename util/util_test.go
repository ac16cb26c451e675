package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$0", FormatUSD(0))
	assert.Equal(t, "$999", FormatUSD(999))
	assert.Equal(t, "$1,000", FormatUSD(1000))
	assert.Equal(t, "$1,234,567", FormatUSD(1234567))
	assert.Equal(t, "-$1,500", FormatUSD(-1500))
}
