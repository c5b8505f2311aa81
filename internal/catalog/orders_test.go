package catalog

import (
	"reflect"
	"testing"
)

func TestFilterByStatus_SubsetLaw(t *testing.T) {
	orders := Orders()

	cases := []struct {
		name   string
		filter StatusFilter
		want   OrderStatus
	}{
		{"processing", FilterProcessing, StatusProcessing},
		{"shipped", FilterShipped, StatusShipped},
		{"completed", FilterCompleted, StatusCompleted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterByStatus(orders, tc.filter)
			if len(got) == 0 {
				t.Fatalf("expected at least one %s order in the session data", tc.want)
			}
			for _, o := range got {
				if o.Status != tc.want {
					t.Fatalf("order %s has status %s, want %s", o.ID, o.Status, tc.want)
				}
			}
			if len(got) > len(orders) {
				t.Fatalf("filtered output larger than input: %d > %d", len(got), len(orders))
			}
		})
	}
}

func TestFilterByStatus_AllReturnsEverything(t *testing.T) {
	orders := Orders()
	got := FilterByStatus(orders, FilterAll)
	if !reflect.DeepEqual(got, orders) {
		t.Fatalf("FilterAll = %+v, want full list", got)
	}
}

func TestFilterByStatus_Idempotent(t *testing.T) {
	orders := Orders()
	for _, f := range []StatusFilter{FilterAll, FilterProcessing, FilterShipped, FilterCompleted} {
		once := FilterByStatus(orders, f)
		twice := FilterByStatus(once, f)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("filter %s not idempotent: %+v vs %+v", f.Label(), once, twice)
		}
	}
}

func TestFilterByStatus_DoesNotMutateInput(t *testing.T) {
	orders := Orders()
	before := make([]Order, len(orders))
	copy(before, orders)

	_ = FilterByStatus(orders, FilterProcessing)
	_ = FilterByStatus(orders, FilterAll)

	if !reflect.DeepEqual(orders, before) {
		t.Fatalf("input mutated: %+v, want %+v", orders, before)
	}
}

func TestStatusFilter_NextCycles(t *testing.T) {
	f := FilterAll
	seen := []StatusFilter{f}
	for i := 0; i < 3; i++ {
		f = f.Next()
		seen = append(seen, f)
	}
	want := []StatusFilter{FilterAll, FilterProcessing, FilterShipped, FilterCompleted}
	if !reflect.DeepEqual(seen, want) {
		t.Fatalf("cycle = %v, want %v", seen, want)
	}
	if f.Next() != FilterAll {
		t.Fatalf("cycle does not wrap back to FilterAll")
	}
}

func TestOrderStatusLabels(t *testing.T) {
	cases := []struct {
		status OrderStatus
		label  string
		key    string
	}{
		{StatusProcessing, "處理中", "processing"},
		{StatusShipped, "已出貨", "shipped"},
		{StatusCompleted, "已完成", "completed"},
	}
	for _, tc := range cases {
		if got := tc.status.Label(); got != tc.label {
			t.Fatalf("Label(%s) = %q, want %q", tc.key, got, tc.label)
		}
		if got := tc.status.String(); got != tc.key {
			t.Fatalf("String() = %q, want %q", got, tc.key)
		}
	}
}
