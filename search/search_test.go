package search

import (
	"testing"
	"time"

	"github.com/flighttsp/flighttsp/tour"
)

func TestCheckDeadlineFiresOnce(t *testing.T) {
	var calls int
	var gotCost int
	ctx := NewContext(1, 10*time.Millisecond, func(best tour.Tour, cost int) {
		calls++
		gotCost = cost
	})
	ctx.UpdateBest(tour.Tour{0, 1, 0}, 42)

	if ctx.CheckDeadline() {
		t.Fatal("deadline should not have fired immediately")
	}

	time.Sleep(15 * time.Millisecond)

	if !ctx.CheckDeadline() {
		t.Fatal("deadline should have fired")
	}
	if !ctx.CheckDeadline() {
		t.Fatal("deadline should keep reporting fired")
	}
	if calls != 1 {
		t.Errorf("onDeadline called %d times, want 1", calls)
	}
	if gotCost != 42 {
		t.Errorf("onDeadline cost = %d, want 42", gotCost)
	}
}

func TestCheckDeadlineWithoutBestNeverCallsBack(t *testing.T) {
	var calls int
	ctx := NewContext(1, time.Millisecond, func(best tour.Tour, cost int) {
		calls++
	})
	time.Sleep(5 * time.Millisecond)
	if !ctx.CheckDeadline() {
		t.Fatal("deadline should have fired")
	}
	if calls != 0 {
		t.Errorf("onDeadline called %d times, want 0 (no best ever recorded)", calls)
	}
}

func TestUpdateBestKeepsCheaper(t *testing.T) {
	ctx := NewContext(1, time.Hour, nil)
	ctx.UpdateBest(tour.Tour{0, 1, 0}, 100)
	ctx.UpdateBest(tour.Tour{0, 2, 0}, 150)
	if ctx.BestCost() != 100 {
		t.Errorf("BestCost() = %d, want 100 (should not regress)", ctx.BestCost())
	}
	ctx.UpdateBest(tour.Tour{0, 2, 0}, 50)
	if ctx.BestCost() != 50 {
		t.Errorf("BestCost() = %d, want 50", ctx.BestCost())
	}
}
