package state

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fancyactive/backstage/internal/sales"
)

func testTable() sales.Table {
	return sales.Table{{
		Date:           time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		Revenue:        decimal.NewFromInt(1200),
		TopProduct:     "高腰瑜珈褲A",
		InventoryCount: 25,
	}}
}

func TestStore_UpdateAndSnapshot(t *testing.T) {
	var store Store

	store.Update(testTable(), nil)

	snap := store.Snapshot()
	if len(snap.Sales) != 1 {
		t.Fatalf("len(Sales) = %d, want 1", len(snap.Sales))
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}
	if snap.LoadedAt.IsZero() {
		t.Fatalf("LoadedAt not set")
	}
}

func TestStore_FailedReloadKeepsOldData(t *testing.T) {
	var store Store
	store.Update(testTable(), nil)
	loadedAt := store.Snapshot().LoadedAt

	loadErr := errors.New("parse row 3")
	store.Update(nil, loadErr)

	snap := store.Snapshot()
	if len(snap.Sales) != 1 {
		t.Fatalf("failed reload dropped data: len(Sales) = %d", len(snap.Sales))
	}
	if snap.LastError == nil || !errors.Is(snap.LastError, loadErr) {
		t.Fatalf("LastError = %v, want %v", snap.LastError, loadErr)
	}
	if !snap.LoadedAt.Equal(loadedAt) {
		t.Fatalf("LoadedAt changed on failed reload")
	}
}

func TestStore_SuccessfulReloadClearsError(t *testing.T) {
	var store Store
	store.Update(nil, errors.New("boom"))
	store.Update(testTable(), nil)

	if snap := store.Snapshot(); snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil after successful reload", snap.LastError)
	}
}

func TestStore_SnapshotIsDefensiveCopy(t *testing.T) {
	var store Store
	store.Update(testTable(), nil)

	snap := store.Snapshot()
	snap.Sales[0].TopProduct = "mutated"

	if got := store.Snapshot().Sales[0].TopProduct; got != "高腰瑜珈褲A" {
		t.Fatalf("snapshot mutation leaked into store: %q", got)
	}
}

func TestStore_UpdateCopiesInput(t *testing.T) {
	var store Store
	table := testTable()
	store.Update(table, nil)

	table[0].TopProduct = "mutated"

	if got := store.Snapshot().Sales[0].TopProduct; got != "高腰瑜珈褲A" {
		t.Fatalf("caller mutation leaked into store: %q", got)
	}
}
