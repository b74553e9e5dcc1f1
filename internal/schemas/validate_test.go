package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateJobPosting_Valid(t *testing.T) {
	doc := `{"id": "j1", "title": "ML Engineer", "company": "Acme", "description": "build models"}`
	assert.NoError(t, ValidateJobPosting(doc))
}

func TestValidateJobPosting_MissingRequired(t *testing.T) {
	err := ValidateJobPosting(`{"id": "j1", "title": "ML Engineer"}`)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Len(t, ve.Errors, 1)
	assert.Contains(t, ve.Errors[0].Message, "description")
}

func TestValidateJobPosting_UnknownField(t *testing.T) {
	err := ValidateJobPosting(`{"title": "x", "description": "y", "surprise": true}`)
	require.Error(t, err)

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestValidateJobPostingList(t *testing.T) {
	valid := `[{"title": "a", "description": "b"}, {"title": "c", "description": "d"}]`
	assert.NoError(t, ValidateJobPostingList(valid))

	invalid := `[{"title": "a", "description": "b"}, {"title": "c"}]`
	err := ValidateJobPostingList(invalid)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Errors[0].Field, "1")
}

func TestValidateJobPosting_MalformedJSON(t *testing.T) {
	err := ValidateJobPosting(`{not json`)
	require.Error(t, err)

	var le *SchemaLoadError
	assert.True(t, errors.As(err, &le))
}
