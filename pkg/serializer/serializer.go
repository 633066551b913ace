// Package serializer renders a token snapshot into the supported output
// formats. Every serializer is a pure function of the snapshot: no clocks, no
// I/O, and byte-identical output for identical input.
package serializer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hellenic-development/figma-tokens/pkg/tokens"
)

// Generator is the name stamped into every generated file header.
const Generator = "figma-tokens"

// Format identifies one of the supported output formats.
type Format string

const (
	FormatCSS      Format = "css"
	FormatTailwind Format = "tailwind"
	FormatSCSS     Format = "scss"
	FormatJSON     Format = "json"
)

// All lists every supported format in canonical order.
var All = []Format{FormatCSS, FormatTailwind, FormatSCSS, FormatJSON}

// Func is the shared serializer contract: one immutable snapshot in, one text
// document out.
type Func func(*tokens.Set) string

// ByFormat returns the serializer for a format.
func ByFormat(f Format) (Func, bool) {
	switch f {
	case FormatCSS:
		return CSS, true
	case FormatTailwind:
		return Tailwind, true
	case FormatSCSS:
		return SCSS, true
	case FormatJSON:
		return JSON, true
	default:
		return nil, false
	}
}

// DefaultFileName returns the conventional output file name for a format.
func DefaultFileName(f Format) string {
	switch f {
	case FormatCSS:
		return "tokens.css"
	case FormatTailwind:
		return "tailwind.tokens.js"
	case FormatSCSS:
		return "_tokens.scss"
	case FormatJSON:
		return "tokens.json"
	default:
		return ""
	}
}

// ParseFormats parses a comma-separated format list, rejecting unknown names.
// An empty input selects all formats.
func ParseFormats(s string) ([]Format, error) {
	if strings.TrimSpace(s) == "" {
		return append([]Format(nil), All...), nil
	}
	var out []Format
	for _, part := range strings.Split(s, ",") {
		name := Format(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		if _, ok := ByFormat(name); !ok {
			return nil, fmt.Errorf("unknown output format %q (supported: css, tailwind, scss, json)", name)
		}
		out = append(out, name)
	}
	if len(out) == 0 {
		return append([]Format(nil), All...), nil
	}
	return out, nil
}

// headerLines returns the shared generated-file notice. Each serializer wraps
// these in its own comment syntax; the JSON format carries them in $metadata
// instead.
func headerLines(meta tokens.Metadata) []string {
	return []string{
		fmt.Sprintf("Design tokens generated by %s.", Generator),
		fmt.Sprintf("Source: %s (%s)", meta.FileName, meta.FileKey),
		fmt.Sprintf("Synced: %s", meta.SyncedAt),
		"Generated file, do not edit by hand.",
	}
}

// formatNumber renders a float without trailing zeros (16 -> "16", -0.5 -> "-0.5").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatPx renders a float as a px dimension.
func formatPx(v float64) string {
	return formatNumber(v) + "px"
}

// shadowValue renders the CSS box-shadow form of an effect value:
// offset-x offset-y blur spread color.
func shadowValue(v tokens.EffectValue) string {
	color := v.Color
	if color == "" {
		color = "rgba(0, 0, 0, 1)"
	}
	return fmt.Sprintf("%s %s %s %s %s", formatPx(v.X), formatPx(v.Y), formatPx(v.Blur), formatPx(v.Spread), color)
}

// lineHeightValue renders a typography token's line height as a px dimension or
// its fallback keyword.
func lineHeightValue(t tokens.TypographyToken) string {
	if t.LineHeightKeyword != "" {
		return t.LineHeightKeyword
	}
	return formatPx(t.LineHeight)
}
