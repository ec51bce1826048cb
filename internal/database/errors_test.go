package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDBError(t *testing.T) {
	cause := fmt.Errorf("%w: syntax error", ErrQueryFailed)
	err := NewDBError(cause, "apply failed").WithQuery("DEFINE TABLE x;")

	assert.Equal(t, "apply failed\nQuery: DEFINE TABLE x;: query execution failed: syntax error", err.Error())
	assert.ErrorIs(t, err, ErrQueryFailed)
	assert.NotErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, cause, errors.Unwrap(err))
}
