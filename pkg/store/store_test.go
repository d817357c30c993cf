package store

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bakeoff-ai/bakeoff/pkg/compare"
	"github.com/bakeoff-ai/bakeoff/pkg/models"
	"github.com/bakeoff-ai/bakeoff/pkg/token"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := New(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func testRun(t *testing.T, label string) models.ComparisonRun {
	t.Helper()
	pricing := models.PricingConfig{
		CostPerMillionInputTokens: 0.50,
		SystemPromptOverheadMs:    120,
		BakedOverheadMs:           0,
		RequestVolume:             1_000_000,
	}
	calc := compare.New(func(string) int { return 347 })
	result, err := calc.Compare("expert prompt", 50, pricing)
	if err != nil {
		t.Fatal(err)
	}
	return models.ComparisonRun{
		Label:      label,
		PromptHash: "deadbeef",
		Pricing:    pricing,
		Result:     result,
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
	}
}

func TestSaveAndGet(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	run := testRun(t, "baseline")
	id, err := st.Save(ctx, run)
	if err != nil {
		t.Fatal(err)
	}
	if id == 0 {
		t.Fatal("expected non-zero run id")
	}

	got, err := st.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Label != "baseline" {
		t.Errorf("expected label baseline, got %s", got.Label)
	}
	if got.PromptHash != "deadbeef" {
		t.Errorf("expected prompt hash deadbeef, got %s", got.PromptHash)
	}
	if got.Result.Traditional.TotalTokensPerRequest != 397 {
		t.Errorf("expected 397 tokens per request, got %d", got.Result.Traditional.TotalTokensPerRequest)
	}
	if got.Result.Baked.SystemTokens != 0 {
		t.Errorf("expected 0 baked system tokens, got %d", got.Result.Baked.SystemTokens)
	}
	if math.Abs(got.Result.CostSavingsAbsolute-173.50) > 1e-9 {
		t.Errorf("expected 173.50 savings, got %v", got.Result.CostSavingsAbsolute)
	}
	if got.Result.Traditional.LatencyOverheadMs != 120 {
		t.Errorf("expected 120ms traditional overhead, got %v", got.Result.Traditional.LatencyOverheadMs)
	}
}

func TestGetMissing(t *testing.T) {
	st := newTestStore(t)
	_, err := st.Get(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	for i, label := range []string{"first", "second", "third"} {
		run := testRun(t, label)
		run.CreatedAt = run.CreatedAt.Add(time.Duration(i) * time.Minute)
		if _, err := st.Save(ctx, run); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := st.List(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Label != "third" || runs[1].Label != "second" {
		t.Errorf("expected newest first, got %s then %s", runs[0].Label, runs[1].Label)
	}

	all, err := st.List(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 runs without limit, got %d", len(all))
	}
}

func TestLatest(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	if _, err := st.Latest(ctx); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on empty store, got %v", err)
	}

	run := testRun(t, "only")
	if _, err := st.Save(ctx, run); err != nil {
		t.Fatal(err)
	}
	got, err := st.Latest(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.Label != "only" {
		t.Errorf("expected label only, got %s", got.Label)
	}
}

func TestTotalSavings(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	total, err := st.TotalSavings(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if total != 0 {
		t.Errorf("expected 0 on empty store, got %v", total)
	}

	for i := 0; i < 2; i++ {
		if _, err := st.Save(ctx, testRun(t, "")); err != nil {
			t.Fatal(err)
		}
	}
	total, err = st.TotalSavings(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(total-347.00) > 1e-9 {
		t.Errorf("expected 347.00 total savings, got %v", total)
	}
}

func TestWriteJSON(t *testing.T) {
	run := testRun(t, "export")
	path := filepath.Join(t.TempDir(), "metrics.json")

	if err := WriteJSON(path, run); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got models.ComparisonRun
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.Label != "export" {
		t.Errorf("expected label export, got %s", got.Label)
	}
	if got.Result.Traditional.SystemTokens != 347 {
		t.Errorf("expected 347 system tokens, got %d", got.Result.Traditional.SystemTokens)
	}
}

var _ Store = (*SQLiteStore)(nil)

func TestSaveEstimatedRun(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	pricing := models.PricingConfig{
		CostPerMillionInputTokens: 0.50,
		SystemPromptOverheadMs:    120,
		BakedOverheadMs:           0,
		RequestVolume:             1_000_000,
	}
	calc := compare.New(token.Estimate)
	result, err := calc.Compare("You are a retrieval systems expert.", 50, pricing)
	if err != nil {
		t.Fatal(err)
	}
	id, err := st.Save(ctx, models.ComparisonRun{
		PromptHash: "cafe",
		Pricing:    pricing,
		Result:     result,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		t.Fatal(err)
	}
	got, err := st.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Result.Traditional.SystemTokens != result.Traditional.SystemTokens {
		t.Errorf("system tokens did not round-trip: %d vs %d",
			got.Result.Traditional.SystemTokens, result.Traditional.SystemTokens)
	}
}
