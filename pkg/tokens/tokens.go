// Package tokens turns a Figma document and its published styles into a
// normalized, serializable token snapshot: colors, typography, spacing, and
// effects, each keyed by a canonical name derived from the style's display name.
package tokens

// SchemaVersion identifies the token snapshot schema emitted by this release.
const SchemaVersion = "1.0"

// Metadata describes the source of a token snapshot. SyncedAt is taken from the
// remote file's lastModified field rather than the wall clock, so serializing
// the same snapshot twice yields identical bytes.
type Metadata struct {
	SchemaVersion string
	SyncedAt      string
	FileKey       string
	FileName      string
}

// ColorToken is a named solid color. Value holds the lowercase #rrggbb form;
// Opacity ranges 0-1 and defaults to 1.
type ColorToken struct {
	Key         string
	Name        string
	Value       string
	Opacity     float64
	Description string
	SourceID    string
}

// TypographyToken is a named text style. LineHeight is the pixel value; when
// the source has no fixed pixel line height, LineHeight is 0 and
// LineHeightKeyword carries the fallback keyword.
type TypographyToken struct {
	Key               string
	Name              string
	FontFamily        string
	FontSize          float64
	FontWeight        float64
	LineHeight        float64
	LineHeightKeyword string
	LetterSpacing     float64
	TextCase          string
	TextDecoration    string
	Description       string
	SourceID          string
}

// SpacingToken is a named pixel distance from the spacing scale.
type SpacingToken struct {
	Key         string
	Name        string
	Value       float64
	Description string
}

// EffectKind classifies an effect token.
type EffectKind string

const (
	EffectShadow EffectKind = "shadow"
	EffectBlur   EffectKind = "blur"
	EffectGlow   EffectKind = "glow"
)

// EffectValue is the structured value of an effect token. Color is an
// rgba(r, g, b, a) string and is empty for effects that carry no color.
type EffectValue struct {
	Color  string
	X      float64
	Y      float64
	Blur   float64
	Spread float64
}

// EffectToken is a named visual effect.
type EffectToken struct {
	Key         string
	Name        string
	Kind        EffectKind
	Value       EffectValue
	Description string
	SourceID    string
}

// Collection is an insertion-ordered map from canonical key to token. Within a
// collection keys are unique; Put on an existing key replaces the token in
// place, keeping its original position so serializer output stays stable.
type Collection[T any] struct {
	keys  []string
	items map[string]T
}

// Put inserts or replaces the token stored under key.
func (c *Collection[T]) Put(key string, v T) {
	if c.items == nil {
		c.items = make(map[string]T)
	}
	if _, exists := c.items[key]; !exists {
		c.keys = append(c.keys, key)
	}
	c.items[key] = v
}

// Get returns the token stored under key.
func (c *Collection[T]) Get(key string) (T, bool) {
	v, ok := c.items[key]
	return v, ok
}

// Len returns the number of tokens in the collection.
func (c *Collection[T]) Len() int { return len(c.keys) }

// Keys returns the canonical keys in insertion order.
func (c *Collection[T]) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Values returns the tokens in insertion order.
func (c *Collection[T]) Values() []T {
	out := make([]T, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.items[k])
	}
	return out
}

// Set is one immutable token snapshot: four ordered collections plus source
// metadata. It is built fresh on every sync and consumed read-only by the
// serializers.
type Set struct {
	Colors     Collection[ColorToken]
	Typography Collection[TypographyToken]
	Spacing    Collection[SpacingToken]
	Effects    Collection[EffectToken]
	Meta       Metadata
}

// NewSet returns an empty snapshot carrying the given metadata.
func NewSet(meta Metadata) *Set {
	return &Set{Meta: meta}
}
