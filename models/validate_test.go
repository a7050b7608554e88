package models

import (
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validatorEngine(t *testing.T) *validator.Validate {
	t.Helper()
	RegisterValidators()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok, "gin binding engine should be go-playground validator")
	return v
}

func TestUserPayloadValidation(t *testing.T) {
	v := validatorEngine(t)

	tests := []struct {
		name    string
		payload UserPayload
		wantErr bool
	}{
		{
			name:    "valid payload",
			payload: UserPayload{FullName: "Jane Doe", Email: "jane@x.com"},
			wantErr: false,
		},
		{
			name:    "email with plus and dots",
			payload: UserPayload{FullName: "John Smith", Email: "john.smith+tag@my-domain.co.uk"},
			wantErr: false,
		},
		{
			name:    "digits in full name",
			payload: UserPayload{FullName: "Jane Doe 3rd", Email: "jane@x.com"},
			wantErr: true,
		},
		{
			name:    "full name too short",
			payload: UserPayload{FullName: "J", Email: "jane@x.com"},
			wantErr: true,
		},
		{
			name:    "full name too long",
			payload: UserPayload{FullName: strings.Repeat("a", 101), Email: "jane@x.com"},
			wantErr: true,
		},
		{
			name:    "missing email",
			payload: UserPayload{FullName: "Jane Doe"},
			wantErr: true,
		},
		{
			name:    "email without at sign",
			payload: UserPayload{FullName: "Jane Doe", Email: "jane.x.com"},
			wantErr: true,
		},
		{
			name:    "email without domain dot",
			payload: UserPayload{FullName: "Jane Doe", Email: "jane@xcom"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.payload)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPostPayloadValidation(t *testing.T) {
	v := validatorEngine(t)

	tests := []struct {
		name    string
		payload PostPayload
		wantErr bool
	}{
		{
			name:    "valid payload",
			payload: PostPayload{Title: "Hello", Content: "World", UserID: "abc"},
			wantErr: false,
		},
		{
			name:    "title at max length",
			payload: PostPayload{Title: strings.Repeat("t", 100), Content: "x", UserID: "abc"},
			wantErr: false,
		},
		{
			name:    "title too long",
			payload: PostPayload{Title: strings.Repeat("t", 101), Content: "x", UserID: "abc"},
			wantErr: true,
		},
		{
			name:    "empty title",
			payload: PostPayload{Title: "", Content: "x", UserID: "abc"},
			wantErr: true,
		},
		{
			name:    "empty content",
			payload: PostPayload{Title: "Hello", Content: "", UserID: "abc"},
			wantErr: true,
		},
		{
			name:    "empty user id",
			payload: PostPayload{Title: "Hello", Content: "x", UserID: ""},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.payload)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidationDetail(t *testing.T) {
	v := validatorEngine(t)

	err := v.Struct(UserPayload{FullName: "Jane123", Email: "jane@x.com"})
	require.Error(t, err)
	assert.Equal(t, "Invalid full name format. Only letters and spaces are allowed.", ValidationDetail(err))

	err = v.Struct(UserPayload{FullName: "Jane Doe", Email: "not-an-email"})
	require.Error(t, err)
	assert.Equal(t, "Invalid email format", ValidationDetail(err))

	err = v.Struct(UserPayload{Email: "jane@x.com"})
	require.Error(t, err)
	assert.Contains(t, ValidationDetail(err), "required")

	assert.Equal(t, "invalid request payload", ValidationDetail(assert.AnError))
}
