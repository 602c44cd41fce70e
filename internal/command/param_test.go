package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadedcity/prismbot/internal/errors"
)

func TestParamSpec_Bind_OptionalDefault(t *testing.T) {
	spec := ParamSpec{Name: "points", Optional: true, Default: 0, Converter: IntConverter}

	value, err := spec.Bind(RawValue{})
	require.NoError(t, err)
	assert.Equal(t, 0, value)
}

func TestParamSpec_Bind_MissingRequired(t *testing.T) {
	spec := ParamSpec{Name: "name"}

	_, err := spec.Bind(RawValue{})
	require.Error(t, err)
	assert.True(t, errors.IsParam(err))
	assert.Contains(t, err.Error(), "name")
}

func TestParamSpec_Bind_ConverterFailure(t *testing.T) {
	spec := ParamSpec{Name: "points", Converter: IntConverter}

	_, err := spec.Bind(RawValue{Present: true, Value: "abc"})
	require.Error(t, err)
	assert.True(t, errors.IsParam(err))
	assert.Contains(t, err.Error(), "abc")
}

func TestParamSpec_Bind_RawString(t *testing.T) {
	spec := ParamSpec{Name: "name"}

	value, err := spec.Bind(RawValue{Present: true, Value: "Jane"})
	require.NoError(t, err)
	assert.Equal(t, "Jane", value)
}

func TestParamSpec_Bind_Converted(t *testing.T) {
	spec := ParamSpec{Name: "points", Converter: IntConverter}

	value, err := spec.Bind(RawValue{Present: true, Value: "42"})
	require.NoError(t, err)
	assert.Equal(t, 42, value)
}

func TestParamSpec_Bind_CollectEmpty(t *testing.T) {
	spec := ParamSpec{Name: "prisms", Collect: true}

	value, err := spec.Bind(RawValue{Present: true, Values: []string{}})
	require.NoError(t, err)
	assert.Equal(t, []string{}, value)
}

func TestParamSpec_Bind_CollectConverted(t *testing.T) {
	spec := ParamSpec{Name: "counts", Collect: true, Converter: IntConverter}

	value, err := spec.Bind(RawValue{Present: true, Values: []string{"1", "2"}})
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2}, value)

	_, err = spec.Bind(RawValue{Present: true, Values: []string{"1", "x"}})
	require.Error(t, err)
	assert.True(t, errors.IsParam(err))
}
