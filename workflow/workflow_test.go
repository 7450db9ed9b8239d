package workflow

import (
	"context"
	"errors"
	"strings"
	"testing"

	"travelflow/provider"
)

func TestRun_ExecutesStepsInOrder(t *testing.T) {
	var order []string
	steps := []Step{
		{Name: "first", Run: func(_ context.Context, wc *Context) error {
			order = append(order, "first")
			wc.Set("a", "1")
			return nil
		}},
		{Name: "second", Run: func(_ context.Context, wc *Context) error {
			order = append(order, "second")
			if wc.String("a") != "1" {
				t.Errorf("expected output of first step to be visible")
			}
			wc.Set("b", "2")
			return nil
		}},
	}

	wc, err := Run(context.Background(), steps)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("unexpected order: %v", order)
	}
	if wc.String("b") != "2" {
		t.Errorf("expected context to retain step outputs")
	}
}

func TestRun_StopsAtFirstError(t *testing.T) {
	executed := false
	steps := []Step{
		{Name: "boom", Run: func(_ context.Context, _ *Context) error {
			return errors.New("provider exploded")
		}},
		{Name: "never", Run: func(_ context.Context, _ *Context) error {
			executed = true
			return nil
		}},
	}

	_, err := Run(context.Background(), steps)
	if err == nil {
		t.Fatalf("expected error")
	}
	if executed {
		t.Errorf("expected later steps to be skipped")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("expected error to carry step name, got %v", err)
	}
}

func TestRun_PreservesProviderErrorKind(t *testing.T) {
	steps := []Step{
		{Name: "list-subscriptions", Run: func(_ context.Context, _ *Context) error {
			return provider.NewError(provider.KindNoSubscription, "", "empty list")
		}},
	}

	_, err := Run(context.Background(), steps)
	if provider.KindOf(err) != provider.KindNoSubscription {
		t.Fatalf("expected kind to survive, got %v", err)
	}
	var pe *provider.Error
	if !errors.As(err, &pe) || pe.Step != "list-subscriptions" {
		t.Fatalf("expected step name annotation, got %+v", pe)
	}
}

func TestContext_SetTwicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on double set")
		}
	}()

	wc := NewContext()
	wc.Set("applicationId", "1")
	wc.Set("applicationId", "2")
}
