//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"testing"
)

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	var h HAL
	steps := 0
	err := RunHeadless(context.Background(), func(got HAL) func() error {
		h = got
		return func() error { steps++; return nil }
	}, HeadlessConfig{Hz: 1000, Ticks: 5})
	if err != nil {
		t.Fatalf("RunHeadless() error = %v", err)
	}
	if steps != 5 {
		t.Fatalf("steps = %d, want 5", steps)
	}
	if got := h.(*hostHAL).t.now(); got != 5 {
		t.Fatalf("simulated ms = %d, want 5", got)
	}
}

func TestRunHeadlessStepError(t *testing.T) {
	boom := errors.New("boom")
	err := RunHeadless(context.Background(), func(HAL) func() error {
		return func() error { return boom }
	}, HeadlessConfig{Hz: 500})
	if !errors.Is(err, boom) {
		t.Fatalf("RunHeadless() error = %v, want %v", err, boom)
	}
}

func TestRunHeadlessCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunHeadless(ctx, func(HAL) func() error { return nil }, HeadlessConfig{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("RunHeadless() error = %v, want context.Canceled", err)
	}
}

func TestRunHeadlessRejectsHz(t *testing.T) {
	called := false
	err := RunHeadless(context.Background(), func(HAL) func() error { called = true; return nil }, HeadlessConfig{Hz: 5000})
	if err == nil || called {
		t.Fatalf("RunHeadless() error = %v, app created = %v", err, called)
	}
}

func TestHostTimeCoalescesTicks(t *testing.T) {
	ht := newHostTime()
	ht.stepN(3)
	ht.stepN(4)
	if got := <-ht.Ticks(); got != 3 {
		t.Fatalf("first tick = %d, want 3", got)
	}
	if got := <-ht.Ticks(); got != 7 {
		t.Fatalf("second tick = %d, want 7", got)
	}
	if ht.now() != 7 {
		t.Fatalf("now = %d, want 7", ht.now())
	}
}
