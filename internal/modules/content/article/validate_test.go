package article

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidPayload(t *testing.T) {
	assert.Nil(t, Validate(validDTO()))
}

func TestValidate_ReportsEveryMissingField(t *testing.T) {
	details := Validate(&CreateArticleDTO{})
	require.Len(t, details, 7)

	fields := make(map[string]string, len(details))
	for _, fe := range details {
		fields[fe.Field] = fe.Message
	}
	for _, want := range []string{"title", "slug", "excerpt", "content", "category", "author", "read_time"} {
		assert.Contains(t, fields, want)
	}
}

func TestValidate_ReadTimeMustBePositive(t *testing.T) {
	dto := validDTO()
	dto.ReadTime = -3

	details := Validate(dto)
	require.Len(t, details, 1)
	assert.Equal(t, "read_time", details[0].Field)
	assert.Equal(t, "read_time must be a positive integer", details[0].Message)
}

func TestValidate_PartialPayload(t *testing.T) {
	dto := &CreateArticleDTO{Title: "Only a title", ReadTime: 5}

	details := Validate(dto)
	require.Len(t, details, 5)
	for _, fe := range details {
		assert.NotEqual(t, "title", fe.Field)
		assert.NotEqual(t, "read_time", fe.Field)
	}
}
