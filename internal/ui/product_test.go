package ui

import (
	"strings"
	"testing"
)

func TestProductForm_FocusCycle(t *testing.T) {
	f := newProductForm()
	f.beginEdit()

	if f.focusIdx != 0 || !f.nameInput.Focused() {
		t.Fatalf("beginEdit did not focus the name field")
	}

	f.cycleFocus(1)
	if f.focusIdx != 1 || !f.featuresInput.Focused() {
		t.Fatalf("focus = %d, want features field", f.focusIdx)
	}

	f.cycleFocus(1)
	f.cycleFocus(1)
	if f.focusIdx != 0 {
		t.Fatalf("focus cycle did not wrap, focusIdx = %d", f.focusIdx)
	}

	f.cycleFocus(-1)
	if f.focusIdx != 2 || !f.imageInput.Focused() {
		t.Fatalf("reverse cycle = %d, want image field", f.focusIdx)
	}

	f.endEdit()
	if f.nameInput.Focused() || f.featuresInput.Focused() || f.imageInput.Focused() {
		t.Fatalf("endEdit left a field focused")
	}
}

func TestProductForm_GenerateRequiresName(t *testing.T) {
	f := newProductForm()

	if err := f.generate(); err == nil {
		t.Fatalf("generate with empty name succeeded")
	}
	if f.warning == "" {
		t.Fatalf("warning not set after rejected generation")
	}
	if f.result != "" {
		t.Fatalf("result = %q, want empty", f.result)
	}
}

func TestProductForm_GenerateUsesDefaultFeatures(t *testing.T) {
	f := newProductForm()
	f.nameInput.SetValue("高腰瑜珈褲A")

	if err := f.generate(); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(f.result, "高腰瑜珈褲A") {
		t.Fatalf("result missing product name: %s", f.result)
	}
	if f.warning != "" {
		t.Fatalf("warning = %q, want empty", f.warning)
	}
}

func TestProductForm_RejectionClearsStaleResult(t *testing.T) {
	f := newProductForm()
	f.nameInput.SetValue("高腰瑜珈褲A")
	if err := f.generate(); err != nil {
		t.Fatalf("generate: %v", err)
	}

	f.nameInput.SetValue("")
	if err := f.generate(); err == nil {
		t.Fatalf("generate with cleared name succeeded")
	}
	if f.result != "" {
		t.Fatalf("stale result kept after rejection: %q", f.result)
	}
}
