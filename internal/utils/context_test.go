// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/al90012/primetrade-ai-assignment/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestIdentityCtxKey(t *testing.T) {
	if IdentityCtxKey.String() != "identity" {
		t.Errorf("expected 'identity', got '%s'", IdentityCtxKey.String())
	}
}

func TestIdentityFromContext_Success(t *testing.T) {
	want := models.Identity{UserID: "u-1", Name: "Jo", Email: "jo@x.com"}
	ctx := WithIdentity(context.Background(), want)

	got, ok := IdentityFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestIdentityFromContext_Missing(t *testing.T) {
	got, ok := IdentityFromContext(context.Background())

	if ok {
		t.Error("expected ok=false for empty context")
	}
	if !got.IsZero() {
		t.Errorf("expected zero identity, got %+v", got)
	}
}

func TestIdentityFromContext_EmptyIdentity(t *testing.T) {
	ctx := WithIdentity(context.Background(), models.Identity{})

	if _, ok := IdentityFromContext(ctx); ok {
		t.Error("expected ok=false for identity without user id")
	}
}

func TestIdentityFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), IdentityCtxKey, "u-1")

	if _, ok := IdentityFromContext(ctx); ok {
		t.Error("expected ok=false for wrong value type")
	}
}
