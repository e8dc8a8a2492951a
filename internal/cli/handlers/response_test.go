package handlers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageOf(t *testing.T) {
	cause := errors.New("boom")

	msg, details := MessageOf(fmt.Errorf("wrapped: %w", FailWithDetails("Ошибка", []string{"a", "b"}, cause)))
	assert.Equal(t, "Ошибка", msg)
	assert.Equal(t, []string{"a", "b"}, details)

	msg, details = MessageOf(cause)
	assert.Equal(t, msgUnexpected, msg)
	assert.Nil(t, details)

	assert.True(t, errors.Is(Fail("Ошибка", cause), cause))
	assert.Equal(t, "Ошибка: boom", Fail("Ошибка", cause).Error())
}

func TestParseID(t *testing.T) {
	id, err := ParseID(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = ParseID("0")
	assert.Error(t, err)
	_, err = ParseID("abc")
	assert.Error(t, err)
}
