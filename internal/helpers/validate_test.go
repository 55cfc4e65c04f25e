package helpers

import (
	"testing"

	"github.com/gatherly/server/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupFixture struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

func TestValidateStructOK(t *testing.T) {
	err := ValidateStruct(signupFixture{Name: "Ada", Email: "ada@example.com", Password: "secret1"})
	assert.NoError(t, err)
}

func TestValidateStructFieldErrors(t *testing.T) {
	err := ValidateStruct(signupFixture{Name: "A", Email: "not-an-email", Password: ""})
	require.Error(t, err)

	e := apperr.From(err)
	assert.Equal(t, apperr.KindValidation, e.Kind)
	require.Len(t, e.Fields, 3)

	byField := map[string]string{}
	for _, fe := range e.Fields {
		byField[fe.Field] = fe.Message
	}
	// Field names follow json tags, not Go names
	assert.Equal(t, "name must be at least 2 characters", byField["name"])
	assert.Equal(t, "Invalid email format", byField["email"])
	assert.Equal(t, "password is required", byField["password"])
}
