package renderer

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
)

func TestWorkerPool_RunsEveryRow(t *testing.T) {
	pool := NewWorkerPool(4)
	seen := make([]int32, 100)

	err := pool.Run(context.Background(), len(seen), func(ctx context.Context, row int) error {
		atomic.AddInt32(&seen[row], 1)
		return nil
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for row, n := range seen {
		if n != 1 {
			t.Errorf("Row %d ran %d times", row, n)
		}
	}
}

func TestWorkerPool_DefaultsToCPUCount(t *testing.T) {
	if NewWorkerPool(0).GetNumWorkers() < 1 {
		t.Error("Expected at least one worker")
	}
	if got := NewWorkerPool(3).GetNumWorkers(); got != 3 {
		t.Errorf("Expected 3 workers, got %d", got)
	}
}

func TestWorkerPool_ReturnsFirstError(t *testing.T) {
	boom := errors.New("boom")
	err := NewWorkerPool(2).Run(context.Background(), 10, func(ctx context.Context, row int) error {
		if row == 3 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("Expected boom, got %v", err)
	}
}

func TestWorkerPool_RecoversPanics(t *testing.T) {
	sentinel := errors.New("sentinel")

	tests := []struct {
		name  string
		value any
		check func(error) bool
	}{
		{"error value", sentinel, func(err error) bool { return errors.Is(err, sentinel) }},
		{"string value", "bad row", func(err error) bool { return strings.Contains(err.Error(), "bad row") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewWorkerPool(1).Run(context.Background(), 5, func(ctx context.Context, row int) error {
				if row == 2 {
					panic(tt.value)
				}
				return nil
			})
			if err == nil || !tt.check(err) {
				t.Errorf("Unexpected error %v", err)
			}
			if !strings.Contains(err.Error(), "row 2") {
				t.Errorf("Expected row number in %q", err)
			}
		})
	}
}

func TestWorkerPool_SingleWorkerKeepsOrder(t *testing.T) {
	var order []int
	err := NewWorkerPool(1).Run(context.Background(), 6, func(ctx context.Context, row int) error {
		order = append(order, row)
		return nil
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for i, row := range order {
		if row != i {
			t.Fatalf("Expected rows in order, got %v", order)
		}
	}
}
