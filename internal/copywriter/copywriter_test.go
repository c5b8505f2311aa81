package copywriter

import (
	"errors"
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	got, err := Generate("高腰瑜珈褲A", "高腰設計, 彈性布料, 透氣無痕")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	for _, want := range []string{"高腰瑜珈褲A", "高腰設計", "彈性布料", "透氣無痕"} {
		if !strings.Contains(got, want) {
			t.Fatalf("generated copy missing %q: %s", want, got)
		}
	}

	// Template positions: material after 採用, benefit after 提供,
	// finish after 保持.
	for _, want := range []string{"採用彈性布料", "提供高腰設計", "保持透氣無痕"} {
		if !strings.Contains(got, want) {
			t.Fatalf("generated copy missing template slot %q: %s", want, got)
		}
	}
}

func TestGenerate_EmptyName(t *testing.T) {
	cases := []string{"", "   "}
	for _, name := range cases {
		got, err := Generate(name, DefaultFeatures)
		if got != "" {
			t.Fatalf("Generate(%q) output = %q, want empty", name, got)
		}
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("Generate(%q) error = %v, want *ValidationError", name, err)
		}
	}
}

func TestGenerate_TooFewFeatures(t *testing.T) {
	got, err := Generate("高腰瑜珈褲A", "高腰設計, 彈性布料")
	if got != "" {
		t.Fatalf("output = %q, want empty", got)
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
}

func TestGenerate_FullwidthCommas(t *testing.T) {
	got, err := Generate("高腰瑜珈褲A", "高腰設計，彈性布料，透氣無痕")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !strings.Contains(got, "採用彈性布料") {
		t.Fatalf("fullwidth commas not split: %s", got)
	}
}

func TestSplitFeatures(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"trims", " a , b ,c ", []string{"a", "b", "c"}},
		{"drops_empties", "a,,b,", []string{"a", "b"}},
		{"blank", "  ", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitFeatures(tc.in)
			if len(got) != len(tc.want) {
				t.Fatalf("SplitFeatures(%q) = %v, want %v", tc.in, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("SplitFeatures(%q)[%d] = %q, want %q", tc.in, i, got[i], tc.want[i])
				}
			}
		})
	}
}
