package ax_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/axkit/ax"
)

func TestErrorFromCode_KnownCodes(t *testing.T) {
	tests := []struct {
		code     ax.Code
		sentinel error
		kind     ax.Kind
	}{
		{ax.CodeFailure, ax.ErrFailure, ax.KindFailure},
		{ax.CodeIllegalArgument, ax.ErrIllegalArgument, ax.KindIllegalArgument},
		{ax.CodeInvalidUIElement, ax.ErrInvalidElement, ax.KindInvalidElement},
		{ax.CodeCannotComplete, ax.ErrCannotComplete, ax.KindCannotComplete},
		{ax.CodeAttributeUnsupported, ax.ErrUnsupported, ax.KindUnsupported},
		{ax.CodeActionUnsupported, ax.ErrUnsupported, ax.KindUnsupported},
		{ax.CodeParameterizedAttributeUnsupported, ax.ErrUnsupported, ax.KindUnsupported},
		{ax.CodeNotImplemented, ax.ErrNotImplemented, ax.KindNotImplemented},
		{ax.CodeAPIDisabled, ax.ErrAPIDisabled, ax.KindAPIDisabled},
		{ax.CodeNoValue, ax.ErrNoValue, ax.KindNoValue},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := ax.ErrorFromCode(tt.code, "test")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)

			var axErr *ax.Error
			require.ErrorAs(t, err, &axErr)
			assert.Equal(t, tt.kind, axErr.Kind)
			assert.Equal(t, tt.code, axErr.Code)
			assert.Contains(t, err.Error(), "test")
		})
	}
}

func TestErrorFromCode_UnknownCodeKeepsCode(t *testing.T) {
	for _, code := range []ax.Code{-1, 42, ax.CodeNotEnoughPrecision, ax.CodeInvalidUIElementObserver} {
		err := ax.ErrorFromCode(code, "mystery")

		var axErr *ax.Error
		require.ErrorAs(t, err, &axErr)
		assert.Equal(t, ax.KindUnknown, axErr.Kind)
		assert.Equal(t, code, axErr.Code)
		assert.ErrorIs(t, err, ax.ErrUnknown)
		assert.Contains(t, err.Error(), fmt.Sprint(int32(code)))
	}
}

func TestErrorFromCode_Success(t *testing.T) {
	assert.NoError(t, ax.ErrorFromCode(ax.CodeSuccess, "fine"))
}

func TestError_KindsDoNotCrossMatch(t *testing.T) {
	err := ax.ErrorFromCode(ax.CodeAPIDisabled, "apple")
	assert.NotErrorIs(t, err, ax.ErrNoValue)
	assert.NotErrorIs(t, err, ax.ErrCannotComplete)
	assert.Contains(t, err.Error(), "apple")
}

func TestError_SurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("read title: %w", ax.ErrorFromCode(ax.CodeCannotComplete, "timeout"))

	assert.ErrorIs(t, err, ax.ErrCannotComplete)
	kind, ok := ax.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, ax.KindCannotComplete, kind)

	_, ok = ax.KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestLookupErrorsAreNotAccessibilityErrors(t *testing.T) {
	var axErr *ax.Error
	assert.False(t, errors.As(ax.ErrAppNotFound, &axErr))
	assert.False(t, errors.As(ax.ErrAttributeNotFound, &axErr))
}
