package results

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationResult(t *testing.T) {
	ok := SuccessResult[int, error](42)
	assert.True(t, ok.IsSuccess())
	assert.False(t, ok.IsFailure())
	assert.Equal(t, 42, *ok.Success)

	failure := errors.New("nope")
	bad := FailureResult[int, error](failure)
	assert.True(t, bad.IsFailure())
	assert.False(t, bad.IsSuccess())
	assert.ErrorIs(t, *bad.Failure, failure)

	var empty OperationResult[int, error]
	assert.False(t, empty.IsSuccess())
	assert.False(t, empty.IsFailure())
}
