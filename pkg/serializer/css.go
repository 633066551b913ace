package serializer

import (
	"fmt"
	"strings"

	"github.com/hellenic-development/figma-tokens/pkg/tokens"
)

// CSS renders the snapshot as CSS custom properties: one assignment per token,
// grouped by category under :root, followed by an always-present dark-mode
// override block kept empty as a placeholder.
func CSS(set *tokens.Set) string {
	var sb strings.Builder

	sb.WriteString("/*\n")
	for _, line := range headerLines(set.Meta) {
		sb.WriteString(" * ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString(" */\n\n")

	sb.WriteString(":root {\n")

	if set.Colors.Len() > 0 {
		sb.WriteString("  /* Colors */\n")
		for _, tok := range set.Colors.Values() {
			sb.WriteString(fmt.Sprintf("  --color-%s: %s;\n", tok.Key, tok.Value))
		}
	}

	if set.Typography.Len() > 0 {
		sb.WriteString("  /* Typography */\n")
		for _, tok := range set.Typography.Values() {
			// CSS font shorthand: weight size/line-height family.
			sb.WriteString(fmt.Sprintf("  --font-%s: %s %s/%s \"%s\";\n",
				tok.Key, formatNumber(tok.FontWeight), formatPx(tok.FontSize), lineHeightValue(tok), tok.FontFamily))
		}
	}

	if set.Spacing.Len() > 0 {
		sb.WriteString("  /* Spacing */\n")
		for _, tok := range set.Spacing.Values() {
			sb.WriteString(fmt.Sprintf("  --spacing-%s: %s;\n", tok.Key, formatPx(tok.Value)))
		}
	}

	if set.Effects.Len() > 0 {
		sb.WriteString("  /* Effects */\n")
		for _, tok := range set.Effects.Values() {
			if tok.Kind == tokens.EffectBlur {
				sb.WriteString(fmt.Sprintf("  --blur-%s: blur(%s);\n", tok.Key, formatPx(tok.Value.Blur)))
				continue
			}
			sb.WriteString(fmt.Sprintf("  --shadow-%s: %s;\n", tok.Key, shadowValue(tok.Value)))
		}
	}

	sb.WriteString("}\n\n")

	sb.WriteString("[data-theme=\"dark\"] {\n")
	sb.WriteString("  /* Dark mode overrides */\n")
	sb.WriteString("}\n")

	return sb.String()
}
