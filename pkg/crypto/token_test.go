package crypto

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckCode(t *testing.T) {
	hash, err := HashCode("123456")
	require.NoError(t, err)
	assert.NotEqual(t, "123456", hash)

	assert.True(t, CheckCode("123456", hash))
	assert.False(t, CheckCode("654321", hash))
	assert.False(t, CheckCode("123456", "not-a-hash"))
}

func TestGenerateVerificationHandle(t *testing.T) {
	a, err := GenerateVerificationHandle()
	require.NoError(t, err)
	b, err := GenerateVerificationHandle()
	require.NoError(t, err)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}

func TestGenerateNumericCode(t *testing.T) {
	code, err := GenerateNumericCode(6)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[0-9]{6}$`), code)
}
