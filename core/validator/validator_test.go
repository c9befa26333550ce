package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Title string  `json:"title" validate:"required,notblank,min=3,max=10"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}

func Test_Validator_Messages(t *testing.T) {
	v := New()
	bad := "nope"

	err := v.Validate(&sample{Title: "   ", Email: &bad})
	require.Error(t, err)

	errs, ok := err.(Errors)
	require.True(t, ok)
	fields := map[string]string{}
	for _, fe := range errs.Details() {
		fields[fe.Field] = fe.Message
	}
	assert.Equal(t, "must not be blank", fields["title"])
	assert.Equal(t, "must be a valid email", fields["email"])
}

func Test_Validator_Valid(t *testing.T) {
	assert.NoError(t, New().Validate(&sample{Title: "concert"}))
}
