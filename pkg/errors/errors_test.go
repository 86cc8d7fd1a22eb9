package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("picker.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "picker.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "picker.yaml:12")
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("mode", "unknown selection mode", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "mode", validationErr.Field)
	require.Equal(t, "validation error: mode: unknown selection mode", err.Error())
}

func TestKeyErrorMentionsInput(t *testing.T) {
	t.Parallel()

	err := NewKeyError("day", "2024-13-01", "month out of range")

	var keyErr *KeyError
	require.ErrorAs(t, err, &keyErr)
	require.Equal(t, "day", keyErr.Kind)
	require.Contains(t, err.Error(), `"2024-13-01"`)
	require.Contains(t, err.Error(), "month out of range")
}

func TestContractErrorMatchesSentinel(t *testing.T) {
	t.Parallel()

	err := NewContractError("ClickDay", "year")

	require.True(t, stdErrors.Is(err, ErrContract))
	require.Contains(t, err.Error(), "ClickDay")
	require.Contains(t, err.Error(), "year scene")
}

func TestNilReceiversAreSafe(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var keyErr *KeyError
	var contractErr *ContractError

	require.Equal(t, "", parseErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Equal(t, "", keyErr.Error())
	require.Nil(t, contractErr.Unwrap())
}
