package logger

import (
	"context"
	"net/http/httptest"
	"testing"
)

func TestNewLogger(t *testing.T) {
	l := NewLogger("test")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	// must not panic or write anywhere
	l.Info().Msg("discarded")
}

func TestGetChildLogger(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()
	if child == nil {
		t.Fatal("expected non-nil child logger")
	}
	if child == parent {
		t.Error("expected child to be a distinct instance")
	}
}

func TestFromContext_NoLoggerAttached(t *testing.T) {
	l := FromContext(context.Background())
	if l == nil {
		t.Fatal("expected non-nil logger from bare context")
	}
}

func TestFromContext_LoggerAttached(t *testing.T) {
	parent := Nop()
	ctx := parent.WithContext(context.Background())

	l := FromContext(ctx)
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestFromRequest(t *testing.T) {
	parent := Nop()
	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(parent.WithContext(r.Context()))

	l := FromRequest(r)
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}
