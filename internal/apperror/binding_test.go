package apperror

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

type jobForm struct {
	Company     string `validate:"required"`
	Position    string `validate:"required"`
	JobLocation string `validate:"required"`
	JobStatus   string `validate:"required,oneof=pending interview declined"`
	Password    string `validate:"omitempty,min=8"`
	Email       string `validate:"omitempty,email"`
}

func TestFromBindingFlattensFieldErrors(t *testing.T) {
	v := validator.New()
	err := v.Struct(jobForm{JobStatus: "archived"})
	require.Error(t, err)

	appErr := FromBinding(err)
	require.Equal(t, KindBadRequest, appErr.Kind)
	require.Equal(t, []string{
		"company is required",
		"position is required",
		"job location is required",
		"invalid job status value",
	}, appErr.Messages)
}

func TestFromBindingPasswordLength(t *testing.T) {
	v := validator.New()
	err := v.Struct(jobForm{
		Company:     "acme",
		Position:    "dev",
		JobLocation: "remote",
		JobStatus:   "pending",
		Password:    "short",
	})
	require.Error(t, err)

	appErr := FromBinding(err)
	require.Equal(t, []string{"password must be at least 8 characters long"}, appErr.Messages)
}

func TestFromBindingEmailFormat(t *testing.T) {
	v := validator.New()
	err := v.Struct(jobForm{
		Company:     "acme",
		Position:    "dev",
		JobLocation: "remote",
		JobStatus:   "pending",
		Email:       "not-an-email",
	})
	require.Error(t, err)

	appErr := FromBinding(err)
	require.Equal(t, []string{"invalid email format"}, appErr.Messages)
}

func TestFromBindingNonValidatorError(t *testing.T) {
	appErr := FromBinding(errors.New("unexpected EOF"))
	require.Equal(t, KindBadRequest, appErr.Kind)
	require.Equal(t, []string{"invalid request body"}, appErr.Messages)
}
