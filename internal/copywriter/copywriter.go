// Package copywriter produces Fancy Active brand copy for a product.
// Generation is a fixed template substitution, nothing more.
package copywriter

import (
	"fmt"
	"strings"
)

// DefaultFeatures pre-fills the feature field of the product form.
const DefaultFeatures = "高腰設計, 彈性布料, 透氣無痕"

// minFeatures is how many feature phrases the template consumes.
const minFeatures = 3

// ValidationError reports a correctable form problem. It is shown as
// an inline warning; the user fixes the input and retries.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Generate substitutes the product name and the first three feature
// phrases into the brand template. Features are comma separated; both
// the ASCII and fullwidth comma are accepted and each phrase is
// trimmed. An empty name or fewer than three phrases is rejected with
// a *ValidationError.
func Generate(name, features string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &ValidationError{Message: "請先輸入商品名稱"}
	}

	phrases := SplitFeatures(features)
	if len(phrases) < minFeatures {
		return "", &ValidationError{Message: fmt.Sprintf("需要至少 %d 個商品特色（以逗號分隔）", minFeatures)}
	}

	// The second phrase names the material, the first the benefit,
	// the third the finish.
	return fmt.Sprintf(
		"%s — 以對肌膚溫柔、對內心堅定的理念設計，採用%s，在運動與日常中提供%s的同時，保持%s，讓你自由自在地展現自我。",
		name, phrases[1], phrases[0], phrases[2],
	), nil
}

// SplitFeatures splits the feature field on commas and trims each
// phrase, dropping empties.
func SplitFeatures(features string) []string {
	features = strings.ReplaceAll(features, "，", ",")
	parts := strings.Split(features, ",")
	phrases := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			phrases = append(phrases, p)
		}
	}
	return phrases
}
