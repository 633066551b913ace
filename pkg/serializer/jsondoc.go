package serializer

import (
	"encoding/json"

	"github.com/hellenic-development/figma-tokens/pkg/tokens"
)

// JSON renders the snapshot as a structured token document: a $metadata block
// plus one object per category, each token carrying $type, $value, and
// $description. Only shadow-kind effects are emitted; blur and glow entries are
// omitted from this format (long-standing behavior the other formats do not
// share, kept for compatibility with existing consumers).
func JSON(set *tokens.Set) string {
	doc := map[string]any{
		"$metadata": map[string]any{
			"generator": Generator,
			"version":   set.Meta.SchemaVersion,
			"syncedAt":  set.Meta.SyncedAt,
			"source": map[string]any{
				"fileKey":  set.Meta.FileKey,
				"fileName": set.Meta.FileName,
			},
		},
	}

	if set.Colors.Len() > 0 {
		colors := make(map[string]any, set.Colors.Len())
		for _, tok := range set.Colors.Values() {
			colors[tok.Key] = map[string]any{
				"$type":        "color",
				"$value":       tok.Value,
				"$description": describe(tok.Description, tok.Name),
			}
		}
		doc["color"] = colors
	}

	if set.Typography.Len() > 0 {
		typography := make(map[string]any, set.Typography.Len())
		for _, tok := range set.Typography.Values() {
			typography[tok.Key] = map[string]any{
				"$type": "typography",
				"$value": map[string]any{
					"fontFamily":    tok.FontFamily,
					"fontSize":      formatPx(tok.FontSize),
					"fontWeight":    tok.FontWeight,
					"lineHeight":    lineHeightValue(tok),
					"letterSpacing": formatPx(tok.LetterSpacing),
				},
				"$description": describe(tok.Description, tok.Name),
			}
		}
		doc["typography"] = typography
	}

	if set.Spacing.Len() > 0 {
		spacing := make(map[string]any, set.Spacing.Len())
		for _, tok := range set.Spacing.Values() {
			spacing[tok.Key] = map[string]any{
				"$type":        "dimension",
				"$value":       formatPx(tok.Value),
				"$description": describe(tok.Description, tok.Name),
			}
		}
		doc["spacing"] = spacing
	}

	shadows := make(map[string]any)
	for _, tok := range set.Effects.Values() {
		if tok.Kind != tokens.EffectShadow {
			continue
		}
		shadows[tok.Key] = map[string]any{
			"$type": "shadow",
			"$value": map[string]any{
				"color":   tok.Value.Color,
				"offsetX": formatPx(tok.Value.X),
				"offsetY": formatPx(tok.Value.Y),
				"blur":    formatPx(tok.Value.Blur),
				"spread":  formatPx(tok.Value.Spread),
			},
			"$description": describe(tok.Description, tok.Name),
		}
	}
	if len(shadows) > 0 {
		doc["shadow"] = shadows
	}

	// Map keys marshal in sorted order, so the document is deterministic.
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		// The document is built purely from marshalable primitives.
		panic(err)
	}
	return string(out) + "\n"
}

// describe falls back to the display name when no description was supplied.
func describe(description, name string) string {
	if description != "" {
		return description
	}
	return name
}
