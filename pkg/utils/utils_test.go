package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUsername(t *testing.T) {
	username, err := GenerateUsername("Maria.Silva@example.com")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(username, "mariasilva_"), username)
	assert.Len(t, username, len("mariasilva_")+usernameLength)

	other, err := GenerateUsername("Maria.Silva@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, username, other)
}

func TestGenerateUsername_WithoutUsablePrefix(t *testing.T) {
	username, err := GenerateUsername("@@@")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(username, "user_"), username)
}

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	date, err := ParseDate("2024-03-14", loc)
	require.NoError(t, err)
	require.NotNil(t, date)
	assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, loc), *date)

	date, err = ParseDate("", loc)
	assert.NoError(t, err)
	assert.Nil(t, date)

	_, err = ParseDate("14/03/2024", loc)
	assert.Error(t, err)
}

func TestParsePositiveInt(t *testing.T) {
	n, err := ParsePositiveInt("", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	n, err = ParsePositiveInt("3", 10)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = ParsePositiveInt("0", 10)
	assert.Error(t, err)

	_, err = ParsePositiveInt("abc", 10)
	assert.Error(t, err)
}
