package serializer

import (
	"fmt"
	"strings"

	"github.com/hellenic-development/figma-tokens/pkg/tokens"
)

// Tailwind renders the snapshot as a Tailwind theme-extension module: a nested
// configuration object under theme.extend, exported with module.exports.
// Duplicate font families collapse into a single fontFamily entry keyed by the
// tokenized family name.
func Tailwind(set *tokens.Set) string {
	var sb strings.Builder

	sb.WriteString("/*\n")
	for _, line := range headerLines(set.Meta) {
		sb.WriteString(" * ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString(" */\n\n")

	sb.WriteString("module.exports = {\n")
	sb.WriteString("  theme: {\n")
	sb.WriteString("    extend: {\n")

	if set.Colors.Len() > 0 {
		sb.WriteString("      colors: {\n")
		for _, tok := range set.Colors.Values() {
			sb.WriteString(fmt.Sprintf("        '%s': '%s',\n", tok.Key, tok.Value))
		}
		sb.WriteString("      },\n")
	}

	if set.Typography.Len() > 0 {
		writeFontFamilies(&sb, set)

		sb.WriteString("      fontSize: {\n")
		for _, tok := range set.Typography.Values() {
			sb.WriteString(fmt.Sprintf("        '%s': ['%s', { lineHeight: '%s' }],\n",
				tok.Key, formatPx(tok.FontSize), lineHeightValue(tok)))
		}
		sb.WriteString("      },\n")
	}

	if set.Spacing.Len() > 0 {
		sb.WriteString("      spacing: {\n")
		for _, tok := range set.Spacing.Values() {
			sb.WriteString(fmt.Sprintf("        '%s': '%s',\n", tok.Key, formatPx(tok.Value)))
		}
		sb.WriteString("      },\n")
	}

	writeEffects(&sb, set)

	sb.WriteString("    },\n")
	sb.WriteString("  },\n")
	sb.WriteString("};\n")

	return sb.String()
}

// writeFontFamilies emits the grouped fontFamily map: one entry per distinct
// family, keyed by the tokenized family string, holding a one-element list.
func writeFontFamilies(sb *strings.Builder, set *tokens.Set) {
	var familyKeys []string
	families := make(map[string]string)
	for _, tok := range set.Typography.Values() {
		key := tokens.KeyFromName(tok.FontFamily)
		if key == "" {
			continue
		}
		if _, seen := families[key]; !seen {
			familyKeys = append(familyKeys, key)
			families[key] = tok.FontFamily
		}
	}
	if len(familyKeys) == 0 {
		return
	}

	sb.WriteString("      fontFamily: {\n")
	for _, key := range familyKeys {
		sb.WriteString(fmt.Sprintf("        '%s': ['%s'],\n", key, families[key]))
	}
	sb.WriteString("      },\n")
}

// writeEffects emits boxShadow and blur maps, each omitted when empty.
func writeEffects(sb *strings.Builder, set *tokens.Set) {
	var shadows, blurs []tokens.EffectToken
	for _, tok := range set.Effects.Values() {
		if tok.Kind == tokens.EffectBlur {
			blurs = append(blurs, tok)
		} else {
			shadows = append(shadows, tok)
		}
	}

	if len(shadows) > 0 {
		sb.WriteString("      boxShadow: {\n")
		for _, tok := range shadows {
			sb.WriteString(fmt.Sprintf("        '%s': '%s',\n", tok.Key, shadowValue(tok.Value)))
		}
		sb.WriteString("      },\n")
	}

	if len(blurs) > 0 {
		sb.WriteString("      blur: {\n")
		for _, tok := range blurs {
			sb.WriteString(fmt.Sprintf("        '%s': '%s',\n", tok.Key, formatPx(tok.Value.Blur)))
		}
		sb.WriteString("      },\n")
	}
}
