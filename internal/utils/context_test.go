// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/ergo/models"
)

func TestContextKeyString(t *testing.T) {
	if TokenPayloadCtxKey.String() != "tokenPayload" {
		t.Errorf("expected 'tokenPayload', got '%s'", TokenPayloadCtxKey.String())
	}
}

func TestGetTokenPayloadFromContext_Success(t *testing.T) {
	ctx := WithTokenPayload(context.Background(), models.TokenPayload{Email: "a@b.c", ID: "1"})

	payload, ok := GetTokenPayloadFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if payload.ID != "1" || payload.Email != "a@b.c" {
		t.Errorf("unexpected payload %+v", payload)
	}
}

func TestGetTokenPayloadFromContext_Missing(t *testing.T) {
	payload, ok := GetTokenPayloadFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if payload.ID != "" {
		t.Errorf("expected empty payload, got %+v", payload)
	}
}

func TestGetTokenPayloadFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), TokenPayloadCtxKey, "not-a-payload")

	if _, ok := GetTokenPayloadFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type")
	}
}
