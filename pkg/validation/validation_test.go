package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Start string `json:"start" validate:"required,hhmm"`
	Gap   int    `json:"gap" validate:"gte=0,lte=240"`
}

func TestStruct_HHMM(t *testing.T) {
	assert.NoError(t, Struct(sample{Start: "09:30", Gap: 30}))

	err := Struct(sample{Start: "9:30", Gap: 30})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "start", verrs[0].Field())
	assert.Equal(t, "hhmm", verrs[0].Tag())
}

func TestStruct_Range(t *testing.T) {
	err := Struct(sample{Start: "09:30", Gap: 300})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "gap", verrs[0].Field())
}
