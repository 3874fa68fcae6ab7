package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesSentinel(t *testing.T) {
	err := Wrapf(ErrNotFound, "def %s", "ahu")

	assert.Contains(t, err.Error(), "def ahu")
	assert.True(t, Is(err, ErrNotFound))
	assert.True(t, IsNotFoundError(err))
	assert.False(t, IsInvalidArgumentError(err))
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("unknown def %q", "ahuu")
	require.Error(t, err)
	assert.True(t, IsNotFoundError(err))
	assert.Contains(t, err.Error(), `unknown def "ahuu"`)
}

func TestNewInvalidArgumentError(t *testing.T) {
	err := NewInvalidArgumentError("subject must be a dict, got %s", "str")
	assert.True(t, IsInvalidArgumentError(err))
	assert.False(t, IsNotFoundError(err))
}

func TestIsValidationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"mandatory", Wrap(ErrMissingMandatoryTag, "equip"), true},
		{"compulsory", Wrap(ErrMissingCompulsoryTag, "id"), true},
		{"kind", Wrap(ErrKindMismatch, "siteRef"), true},
		{"not found", Wrap(ErrNotFound, "ahu"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidationError(tt.err))
		})
	}
}

type tagError struct {
	tag string
}

func (e *tagError) Error() string { return "missing " + e.tag }
func (e *tagError) Unwrap() error { return ErrMissingMandatoryTag }

func TestAsWithUnwrappingType(t *testing.T) {
	err := Wrap(&tagError{tag: "equip"}, "validate ahu")

	var target *tagError
	require.True(t, As(err, &target))
	assert.Equal(t, "equip", target.tag)
	assert.True(t, Is(err, ErrMissingMandatoryTag))
}

func TestWithHint(t *testing.T) {
	err := WithHint(ErrNotFound, "did you mean ahu?")

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "did you mean ahu?", hints[0])
}

func TestStackTrace(t *testing.T) {
	err := New("with stack")

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "errors_test.go")
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.Nil(t, WithDetail(nil, "detail"))
}

func ExampleWrap() {
	err := Wrap(ErrKindMismatch, "siteRef")
	fmt.Println(err)
	// Output: siteRef: kind mismatch
}
