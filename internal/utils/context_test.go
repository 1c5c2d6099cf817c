// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestOperatorCtxKey(t *testing.T) {
	if OperatorCtxKey.String() != "operator" {
		t.Errorf("expected 'operator', got '%s'", OperatorCtxKey.String())
	}
}

func TestGetOperatorFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), OperatorCtxKey, "ops")

	operator, ok := GetOperatorFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if operator != "ops" {
		t.Errorf("expected operator=ops, got %s", operator)
	}
}

func TestGetOperatorFromContext_Missing(t *testing.T) {
	operator, ok := GetOperatorFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if operator != "" {
		t.Errorf("expected empty operator, got %s", operator)
	}
}

func TestGetOperatorFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), OperatorCtxKey, int64(42))

	if _, ok := GetOperatorFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetOperatorFromContext_Empty(t *testing.T) {
	ctx := context.WithValue(context.Background(), OperatorCtxKey, "")

	if _, ok := GetOperatorFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty operator, got true")
	}
}

func TestGetTraceIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, "trace-1")

	traceID, ok := GetTraceIDFromContext(ctx)
	if !ok || traceID != "trace-1" {
		t.Errorf("expected trace-1, got %q (ok=%v)", traceID, ok)
	}

	if _, ok := GetTraceIDFromContext(context.Background()); ok {
		t.Error("expected ok=false without trace id")
	}
}
