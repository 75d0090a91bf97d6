package utils

import (
	"context"
	"testing"

	"github.com/mkarpov/linkvault/models"
	"github.com/stretchr/testify/assert"
)

func TestGetIdentityFromContext_Found(t *testing.T) {
	want := models.Identity{UserID: 42, Email: "a@x.com"}
	ctx := context.WithValue(context.Background(), IdentityCtxKey, want)

	got, ok := GetIdentityFromContext(ctx)

	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestGetIdentityFromContext_Missing(t *testing.T) {
	_, ok := GetIdentityFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetIdentityFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), IdentityCtxKey, "not-an-identity")

	_, ok := GetIdentityFromContext(ctx)
	assert.False(t, ok)
}

func TestContextKey_String(t *testing.T) {
	assert.Equal(t, "identity", IdentityCtxKey.String())
}
