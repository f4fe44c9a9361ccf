package domain

import (
	"errors"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "jsonstore.load",
		Kind: KindInvalidData,
		Path: "expenses.json",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindInvalidData {
		t.Fatalf("expected kind %s", KindInvalidData)
	}

	want := "jsonstore.load: invalid_data (path=expenses.json): root"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}

func TestIsKind(t *testing.T) {
	err := &OpError{Op: "config.load", Kind: KindInvalidConfig}

	if !IsKind(err, KindInvalidConfig) {
		t.Fatalf("expected IsKind to match")
	}
	if IsKind(err, KindInvalidInput) {
		t.Fatalf("expected IsKind not to match another kind")
	}
	if IsKind(errors.New("plain"), KindInvalidConfig) {
		t.Fatalf("expected plain errors to never match")
	}
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInput("store.add", "invalid category selection %d", 7)

	if !IsKind(err, KindInvalidInput) {
		t.Fatalf("expected KindInvalidInput, got %v", err)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput in chain")
	}
	if got := Reason(err); got != "invalid category selection 7" {
		t.Fatalf("unexpected reason %q", got)
	}
}

func TestReason_PlainError(t *testing.T) {
	if got := Reason(errors.New("disk full")); got != "disk full" {
		t.Fatalf("unexpected reason %q", got)
	}
	if got := Reason(nil); got != "" {
		t.Fatalf("expected empty reason, got %q", got)
	}
}
