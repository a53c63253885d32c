package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IsaacBreen/starfield/errors"
)

func TestTaxonomy(t *testing.T) {
	config := []error{
		errors.NewInvalidRecord("int"),
		errors.NewMultipleVariadic("Node", []string{"A", "B"}),
		errors.NewNoVariadic("Node"),
		errors.NewVariadicType("Node", "Items", "string"),
		errors.NewInvalidDefault("Node", "N", "x", "invalid syntax"),
		errors.NewUnknownField("Node", "Missing"),
		errors.NewDuplicateKeyword("Node", "name"),
		errors.NewUnexportedVariadic("Node", "items"),
		errors.NewUnsupportedDefault("map[string]int"),
	}
	for _, err := range config {
		assert.ErrorIs(t, err, errors.ErrConfig, err.Error())
		assert.NotErrorIs(t, err, errors.ErrArgument, err.Error())
	}

	argument := []error{
		errors.NewAmbiguousVariadic("items"),
		errors.NewMissingArg("label"),
		errors.NewUnexpectedArg("lable", "label"),
		errors.NewPositionalArg(2),
		errors.NewPositionalAfterKeyword(1),
		errors.NewDuplicateArg("label"),
		errors.NewArgType("label", "string", "int"),
	}
	for _, err := range argument {
		assert.ErrorIs(t, err, errors.ErrArgument, err.Error())
		assert.NotErrorIs(t, err, errors.ErrConfig, err.Error())
	}
}

func TestWrappedErrorsKeepTaxonomy(t *testing.T) {
	err := fmt.Errorf("argument items[0]: %w", errors.NewMissingArg("label"))

	require.ErrorIs(t, err, errors.ErrArgument)

	var ma errors.MissingArgError
	require.True(t, stderrors.As(err, &ma))
	assert.Equal(t, "label", ma.Field)
}

func TestMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{errors.NewMultipleVariadic("Node", []string{"A", "B"}), "record Node: expected at most one variadic field, got 2: A, B"},
		{errors.NewAmbiguousVariadic("items"), "cannot pass variadic field items as a keyword argument when there are positional arguments"},
		{errors.NewUnexpectedArg("colour", ""), "unexpected keyword argument: colour"},
		{errors.NewUnexpectedArg("lable", "label"), `unexpected keyword argument: lable (did you mean "label"?)`},
		{errors.NewMissingArg("label"), "missing required keyword argument: label"},
		{errors.NewPositionalArg(2), "takes 0 positional arguments but 2 were given"},
		{errors.NewArgType("label", "string", "int"), "argument label: cannot use int as string"},
		{errors.NewUnsupportedDefault("map[string]int"), "unsupported type: map[string]int"},
		{errors.NewUnexportedVariadic("Node", "items"), "record Node: variadic field items must be exported"},
	}
	for _, tt := range tests {
		assert.EqualError(t, tt.err, tt.want)
	}
}
