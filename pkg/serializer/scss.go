package serializer

import (
	"fmt"
	"strings"

	"github.com/hellenic-development/figma-tokens/pkg/tokens"
)

// SCSS renders the snapshot as SCSS variables plus two ordered maps (colors and
// spacing) and a conditional typography mixin with one branch per typography
// token, in token insertion order.
func SCSS(set *tokens.Set) string {
	var sb strings.Builder

	for _, line := range headerLines(set.Meta) {
		sb.WriteString("// ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	if set.Colors.Len() > 0 {
		sb.WriteString("// Colors\n")
		for _, tok := range set.Colors.Values() {
			sb.WriteString(fmt.Sprintf("$color-%s: %s;\n", tok.Key, tok.Value))
		}
		sb.WriteString("\n")
	}

	if set.Spacing.Len() > 0 {
		sb.WriteString("// Spacing\n")
		for _, tok := range set.Spacing.Values() {
			sb.WriteString(fmt.Sprintf("$spacing-%s: %s;\n", tok.Key, formatPx(tok.Value)))
		}
		sb.WriteString("\n")
	}

	if set.Effects.Len() > 0 {
		sb.WriteString("// Effects\n")
		for _, tok := range set.Effects.Values() {
			if tok.Kind == tokens.EffectBlur {
				sb.WriteString(fmt.Sprintf("$blur-%s: blur(%s);\n", tok.Key, formatPx(tok.Value.Blur)))
				continue
			}
			sb.WriteString(fmt.Sprintf("$shadow-%s: %s;\n", tok.Key, shadowValue(tok.Value)))
		}
		sb.WriteString("\n")
	}

	writeSCSSMaps(&sb, set)
	writeTypographyMixin(&sb, set)

	return sb.String()
}

// writeSCSSMaps emits the colors and spacing maps consumed by @each loops.
func writeSCSSMaps(sb *strings.Builder, set *tokens.Set) {
	if set.Colors.Len() > 0 {
		sb.WriteString("$colors: (\n")
		for _, tok := range set.Colors.Values() {
			sb.WriteString(fmt.Sprintf("  '%s': %s,\n", tok.Key, tok.Value))
		}
		sb.WriteString(");\n\n")
	}

	if set.Spacing.Len() > 0 {
		sb.WriteString("$spacing: (\n")
		for _, tok := range set.Spacing.Values() {
			sb.WriteString(fmt.Sprintf("  '%s': %s,\n", tok.Key, formatPx(tok.Value)))
		}
		sb.WriteString(");\n\n")
	}
}

// writeTypographyMixin emits a mixin that switches on the style key and expands
// to the matching typography declaration block. Omitted entirely when there are
// no typography tokens.
func writeTypographyMixin(sb *strings.Builder, set *tokens.Set) {
	if set.Typography.Len() == 0 {
		return
	}

	sb.WriteString("@mixin typography($style) {\n")
	for i, tok := range set.Typography.Values() {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("  @if $style == '%s' {\n", tok.Key))
		} else {
			sb.WriteString(fmt.Sprintf("  } @else if $style == '%s' {\n", tok.Key))
		}
		sb.WriteString(fmt.Sprintf("    font-family: '%s';\n", tok.FontFamily))
		sb.WriteString(fmt.Sprintf("    font-size: %s;\n", formatPx(tok.FontSize)))
		sb.WriteString(fmt.Sprintf("    font-weight: %s;\n", formatNumber(tok.FontWeight)))
		sb.WriteString(fmt.Sprintf("    line-height: %s;\n", lineHeightValue(tok)))
		if tok.LetterSpacing != 0 {
			sb.WriteString(fmt.Sprintf("    letter-spacing: %s;\n", formatPx(tok.LetterSpacing)))
		}
		if transform := textTransform(tok.TextCase); transform != "" {
			sb.WriteString(fmt.Sprintf("    text-transform: %s;\n", transform))
		}
		if decoration := textDecoration(tok.TextDecoration); decoration != "" {
			sb.WriteString(fmt.Sprintf("    text-decoration: %s;\n", decoration))
		}
	}
	sb.WriteString("  }\n")
	sb.WriteString("}\n")
}

func textTransform(textCase string) string {
	switch textCase {
	case "UPPER":
		return "uppercase"
	case "LOWER":
		return "lowercase"
	case "TITLE":
		return "capitalize"
	default:
		return ""
	}
}

func textDecoration(decoration string) string {
	switch decoration {
	case "UNDERLINE":
		return "underline"
	case "STRIKETHROUGH":
		return "line-through"
	default:
		return ""
	}
}
