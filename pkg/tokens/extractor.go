package tokens

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/hellenic-development/figma-tokens/pkg/figma"
)

// defaultSpacingScale is emitted when the document has no usable "Spacing"
// container. It must reproduce exactly regardless of source content.
var defaultSpacingScale = []float64{0, 4, 8, 12, 16, 20, 24, 32, 40, 48, 64, 80, 96, 128}

// spacingContainerName is the display name of the frame that holds the spacing
// scale, matched case-insensitively.
const spacingContainerName = "Spacing"

// Extract builds the full token snapshot from a file response and its published
// style list. A single style, variable, or node with missing or malformed
// structure contributes no token and does not affect the extraction of its
// siblings; Extract itself never fails.
func Extract(file *figma.FileResponse, styles []figma.StyleMetadata, fileKey string) *Set {
	set := NewSet(Metadata{
		SchemaVersion: SchemaVersion,
		SyncedAt:      file.LastModified,
		FileKey:       fileKey,
		FileName:      file.Name,
	})

	extractColorStyles(file, styles, set)
	extractColorVariables(file, set)
	extractTypography(file, styles, set)
	extractSpacing(&file.Document, set)
	extractEffects(file, styles, set)

	return set
}

// extractColorStyles adds one color token per published FILL style whose node
// resolves and carries a solid first fill.
func extractColorStyles(file *figma.FileResponse, styles []figma.StyleMetadata, set *Set) {
	for _, st := range styles {
		if st.StyleType != "FILL" {
			continue
		}
		node := FindByStyleID(&file.Document, st.NodeID)
		if node == nil || len(node.Fills) == 0 {
			continue
		}
		fill := node.Fills[0]
		if fill.Type != "SOLID" || fill.Color == nil {
			continue
		}

		opacity := 1.0
		if fill.Opacity != nil {
			opacity = *fill.Opacity
		}

		key := KeyFromName(st.Name)
		if key == "" {
			continue
		}
		set.Colors.Put(key, ColorToken{
			Key:         key,
			Name:        st.Name,
			Value:       colorToHex(*fill.Color),
			Opacity:     opacity,
			Description: st.Description,
			SourceID:    st.Key,
		})
	}
}

// extractColorVariables merges color variables into the snapshot after styles,
// so a variable overwrites a style-sourced token on key collision. Variable IDs
// and mode keys are visited in sorted order to keep the snapshot deterministic.
func extractColorVariables(file *figma.FileResponse, set *Set) {
	ids := make([]string, 0, len(file.Variables))
	for id := range file.Variables {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		v := file.Variables[id]
		if v.ResolvedType != "COLOR" || len(v.ValuesByMode) == 0 {
			continue
		}

		modes := make([]string, 0, len(v.ValuesByMode))
		for mode := range v.ValuesByMode {
			modes = append(modes, mode)
		}
		sort.Strings(modes)

		var vc figma.Color
		if err := json.Unmarshal(v.ValuesByMode[modes[0]], &vc); err != nil {
			continue
		}

		key := KeyFromName(v.Name)
		if key == "" {
			continue
		}
		set.Colors.Put(key, ColorToken{
			Key:         key,
			Name:        v.Name,
			Value:       colorToHex(vc),
			Opacity:     alphaOrOpaque(vc.A),
			Description: v.Description,
			SourceID:    id,
		})
	}
}

// extractTypography adds one typography token per published TEXT style whose
// node resolves and carries text style properties.
func extractTypography(file *figma.FileResponse, styles []figma.StyleMetadata, set *Set) {
	for _, st := range styles {
		if st.StyleType != "TEXT" {
			continue
		}
		node := FindByStyleID(&file.Document, st.NodeID)
		if node == nil || node.Style == nil {
			continue
		}

		key := KeyFromName(st.Name)
		if key == "" {
			continue
		}
		tok := TypographyToken{
			Key:            key,
			Name:           st.Name,
			FontFamily:     node.Style.FontFamily,
			FontSize:       node.Style.FontSize,
			FontWeight:     node.Style.FontWeight,
			LineHeight:     node.Style.LineHeightPx,
			LetterSpacing:  node.Style.LetterSpacing,
			TextCase:       node.Style.TextCase,
			TextDecoration: node.Style.TextDecoration,
			Description:    st.Description,
			SourceID:       st.Key,
		}
		if tok.LineHeight == 0 {
			tok.LineHeightKeyword = "normal"
		}
		set.Typography.Put(key, tok)
	}
}

// extractSpacing derives spacing tokens from the direct children of the
// "Spacing" container, using each child's box width rounded to the nearest
// pixel. When the container is missing or has no valid children, the fixed
// default scale is emitted instead.
func extractSpacing(root *figma.Node, set *Set) {
	if container := FindByName(root, spacingContainerName); container != nil {
		for _, child := range container.Children {
			if child.AbsoluteBoundingBox == nil {
				continue
			}
			key := KeyFromName(child.Name)
			if key == "" {
				continue
			}
			set.Spacing.Put(key, SpacingToken{
				Key:   key,
				Name:  child.Name,
				Value: math.Round(child.AbsoluteBoundingBox.Width),
			})
		}
	}

	if set.Spacing.Len() == 0 {
		for i, px := range defaultSpacingScale {
			key := fmt.Sprintf("space-%d", i)
			set.Spacing.Put(key, SpacingToken{Key: key, Name: key, Value: px})
		}
	}
}

// extractEffects adds one effect token per published EFFECT style whose node
// resolves and carries at least one effect layer. Only the first layer is used.
func extractEffects(file *figma.FileResponse, styles []figma.StyleMetadata, set *Set) {
	for _, st := range styles {
		if st.StyleType != "EFFECT" {
			continue
		}
		node := FindByStyleID(&file.Document, st.NodeID)
		if node == nil || len(node.Effects) == 0 {
			continue
		}
		effect := node.Effects[0]

		value := EffectValue{
			Blur:   effect.Radius,
			Spread: effect.Spread,
			Color:  colorToRGBA(effect.Color),
		}
		if effect.Offset != nil {
			value.X = effect.Offset.X
			value.Y = effect.Offset.Y
		}

		key := KeyFromName(st.Name)
		if key == "" {
			continue
		}
		set.Effects.Put(key, EffectToken{
			Key:         key,
			Name:        st.Name,
			Kind:        classifyEffect(effect.Type),
			Value:       value,
			Description: st.Description,
			SourceID:    st.Key,
		})
	}
}

// classifyEffect maps a Figma effect type to a token kind. Unknown types fall
// back to shadow rather than failing.
func classifyEffect(effectType string) EffectKind {
	switch effectType {
	case "DROP_SHADOW", "INNER_SHADOW":
		return EffectShadow
	case "LAYER_BLUR", "BACKGROUND_BLUR":
		return EffectBlur
	default:
		return EffectShadow
	}
}

// colorToHex converts unit-interval RGB channels to a lowercase #rrggbb triplet
// by rounding each channel to the nearest 8-bit value.
func colorToHex(c figma.Color) string {
	r := int(math.Round(c.R * 255))
	g := int(math.Round(c.G * 255))
	b := int(math.Round(c.B * 255))
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// colorToRGBA converts a color to an rgba(r, g, b, a) string using the same
// channel rounding as colorToHex. A nil color yields opaque black, and a
// missing alpha channel means fully opaque.
func colorToRGBA(c *figma.Color) string {
	if c == nil {
		return "rgba(0, 0, 0, 1)"
	}
	r := int(math.Round(c.R * 255))
	g := int(math.Round(c.G * 255))
	b := int(math.Round(c.B * 255))
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(alphaOrOpaque(c.A), 'g', -1, 64))
}

// alphaOrOpaque resolves an optional alpha channel, defaulting to 1.
func alphaOrOpaque(a *float64) float64 {
	if a == nil {
		return 1
	}
	return *a
}
