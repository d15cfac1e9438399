//go:build !wasm

package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_StartsEmptyAndEditing(t *testing.T) {
	f := New()

	assert.Equal(t, Editing, f.State())
	assert.False(t, f.Submitted())
	assert.Equal(t, Application{}, f.Values())
}

func TestSet_OverwritesExactlyOneField(t *testing.T) {
	f := New()

	require.NoError(t, f.SetName("Jane"))
	require.NoError(t, f.SetName("Jane Doe"))
	require.NoError(t, f.Set(Organisation, "Arts Co"))

	assert.Equal(t, Application{Name: "Jane Doe", Organisation: "Arts Co"}, f.Values())
}

func TestSubmit_WithRequiredFieldsDiscardsValues(t *testing.T) {
	f := New()
	require.NoError(t, f.SetName("Jane Doe"))
	require.NoError(t, f.SetEmail("jane@example.com"))
	require.NoError(t, f.SetOrganisation(""))
	require.NoError(t, f.SetMessage(""))

	require.NoError(t, f.Submit())

	assert.Equal(t, Submitted, f.State())
	assert.Equal(t, Application{}, f.Values(), "submitted values must not be retrievable")
}

func TestSubmit_EmptyNameRejected(t *testing.T) {
	cases := map[string]Application{
		"everything else filled": {Email: "jane@example.com", Organisation: "Org", Message: "hi"},
		"only email":             {Email: "jane@example.com"},
		"whitespace name":        {Name: "   ", Email: "jane@example.com"},
	}
	for name, values := range cases {
		t.Run(name, func(t *testing.T) {
			f := New()
			for _, field := range Fields() {
				require.NoError(t, f.Set(field, values.Get(field)))
			}

			err := f.Submit()

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, []Field{Name}, verr.Missing)
			assert.ErrorIs(t, err, ErrRequired)
			assert.Equal(t, Editing, f.State())
			assert.Equal(t, values, f.Values(), "a rejected submit keeps what was typed")
		})
	}
}

func TestSubmit_ReportsEveryMissingField(t *testing.T) {
	f := New()

	err := f.Submit()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []Field{Name, Email}, verr.Missing)
	assert.Equal(t, "Full Name is required; Email Address is required", err.Error())
	assert.NotNil(t, verr.For(Email))
	assert.Nil(t, verr.For(Organisation))
}

func TestSubmit_EmailFormatNotValidated(t *testing.T) {
	f := New()
	require.NoError(t, f.SetName("Jane"))
	require.NoError(t, f.SetEmail("not-an-email"))

	assert.NoError(t, f.Submit())
}

func TestSubmitted_IsTerminal(t *testing.T) {
	f := New()
	require.NoError(t, f.SetName("Jane"))
	require.NoError(t, f.SetEmail("jane@example.com"))
	require.NoError(t, f.Submit())

	for _, field := range Fields() {
		assert.ErrorIs(t, f.Set(field, "late edit"), ErrSubmitted)
	}
	assert.ErrorIs(t, f.Submit(), ErrSubmitted)
	assert.Equal(t, Application{}, f.Values())
	assert.True(t, f.Submitted())
}

func TestSet_UnknownField(t *testing.T) {
	err := New().Set(Field(42), "x")

	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestParseField(t *testing.T) {
	for _, field := range Fields() {
		got, ok := ParseField(field.String())
		require.True(t, ok)
		assert.Equal(t, field, got)
	}
	_, ok := ParseField("phone")
	assert.False(t, ok)
}
