package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringSliceValue(t *testing.T) {
	val, err := StringSlice{"a", "b"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, val)

	val, err = StringSlice(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", val)
}

func TestStringSliceScan(t *testing.T) {
	var s StringSlice
	require.NoError(t, s.Scan(`["a","b"]`))
	assert.Equal(t, StringSlice{"a", "b"}, s)

	require.NoError(t, s.Scan([]byte(`["c"]`)))
	assert.Equal(t, StringSlice{"c"}, s)

	require.NoError(t, s.Scan(nil))
	assert.Empty(t, s)

	require.NoError(t, s.Scan("null"))
	assert.Empty(t, s)

	assert.Error(t, s.Scan(42))
}
