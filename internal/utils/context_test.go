package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-store-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestGetClaimsFromContext(t *testing.T) {
	claims := models.Claims{ID: "user-1", Email: "a@b.c"}

	got, ok := GetClaimsFromContext(context.WithValue(context.Background(), ClaimsCtxKey, claims))
	assert.True(t, ok)
	assert.Equal(t, claims, got)
}

func TestGetClaimsFromContext_Missing(t *testing.T) {
	_, ok := GetClaimsFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetClaimsFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), ClaimsCtxKey, "user-1")

	_, ok := GetClaimsFromContext(ctx)
	assert.False(t, ok)
}

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "claims", ClaimsCtxKey.String())
}
