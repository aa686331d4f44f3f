package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	assert.Equal(t, "Rs 0.00", FormatINR(0))
	assert.Equal(t, "Rs 120.00", FormatINR(120))
	assert.Equal(t, "Rs 3,000.00", FormatINR(3000))
	assert.Equal(t, "Rs 1,234,567.50", FormatINR(1234567.5))
}
