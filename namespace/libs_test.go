package namespace

import (
	"testing"

	"github.com/j2inn/haystack-core-sub001/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibs(t *testing.T) {
	ns := fixture()

	assert.Equal(t, []string{"lib:phIoT", "lib:ph"}, names(ns.Libs()))

	v, err := ns.LibVersion("phIoT")
	require.NoError(t, err)
	assert.Equal(t, "3.9.12", v.String())

	v, err = ns.LibVersion("lib:ph")
	require.NoError(t, err)
	assert.EqualValues(t, 3, v.Major())
}

func TestRequireLib(t *testing.T) {
	ns := fixture()

	assert.NoError(t, ns.RequireLib("phIoT", ">= 3.9"))
	assert.NoError(t, ns.RequireLib("lib:phIoT", "~3.9.0"))

	err := ns.RequireLib("phIoT", "< 3")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConflict))
	assert.NotEmpty(t, errors.GetAllHints(err))

	err = ns.RequireLib("phScience", ">= 1")
	assert.True(t, errors.IsNotFoundError(err))

	err = ns.RequireLib("phIoT", "not a constraint")
	assert.True(t, errors.IsInvalidArgumentError(err))
}
