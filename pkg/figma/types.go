package figma

import "encoding/json"

// FileResponse represents the complete response from the Figma file API endpoint.
// It contains the file metadata, document tree, a map of published styles, and the
// variable collection newer Figma files expose alongside styles.
type FileResponse struct {
	Name          string              `json:"name"`
	LastModified  string              `json:"lastModified"`
	Version       string              `json:"version"`
	Document      Node                `json:"document"`
	Styles        map[string]Style    `json:"styles"`
	Variables     map[string]Variable `json:"variables,omitempty"`
	SchemaVersion int                 `json:"schemaVersion"`
}

// StylesResponse represents the response from the Figma styles API endpoint.
type StylesResponse struct {
	Meta Meta `json:"meta"`
}

// Meta contains the list of published style metadata entries in a Figma file.
type Meta struct {
	Styles []StyleMetadata `json:"styles"`
}

// StyleMetadata describes a single published style: its unique key, the ID of the
// node that carries its visual definition, its type (FILL, TEXT, EFFECT, or GRID),
// name, and description.
type StyleMetadata struct {
	Key         string `json:"key"`
	FileKey     string `json:"file_key"`
	NodeID      string `json:"node_id"`
	StyleType   string `json:"style_type"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Style represents a published Figma style as embedded in the file response.
type Style struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StyleType   string `json:"styleType"`
}

// Variable is a named, typed value from the file's variable collection. Each
// variable has one value per mode (e.g. light/dark); values are kept raw because
// their shape depends on ResolvedType and a malformed entry must not fail the
// whole file parse.
type Variable struct {
	Name         string                     `json:"name"`
	Description  string                     `json:"description"`
	ResolvedType string                     `json:"resolvedType"`
	ValuesByMode map[string]json.RawMessage `json:"valuesByMode"`
}

// Node represents a single element in the Figma document tree. Nodes can bind
// published styles via the Styles map (slot name -> style identifier) and/or
// carry raw visual properties directly.
type Node struct {
	ID                  string            `json:"id"`
	Name                string            `json:"name"`
	Type                string            `json:"type"`
	Children            []Node            `json:"children,omitempty"`
	Styles              map[string]string `json:"styles,omitempty"`
	Fills               []Paint           `json:"fills,omitempty"`
	Effects             []Effect          `json:"effects,omitempty"`
	Style               *TypeStyle        `json:"style,omitempty"`
	AbsoluteBoundingBox *Rectangle        `json:"absoluteBoundingBox,omitempty"`
}

// Color represents an RGBA color with float channels ranging from 0 to 1.
// Alpha is a pointer so an absent field (which Figma treats as fully opaque)
// can be told apart from an explicit zero.
type Color struct {
	R float64  `json:"r"`
	G float64  `json:"g"`
	B float64  `json:"b"`
	A *float64 `json:"a,omitempty"`
}

// Paint represents a fill applied to a node. Opacity is a pointer so that an
// absent field (which Figma treats as fully opaque) can be told apart from an
// explicit zero.
type Paint struct {
	Type    string   `json:"type"`
	Visible *bool    `json:"visible,omitempty"`
	Opacity *float64 `json:"opacity,omitempty"`
	Color   *Color   `json:"color,omitempty"`
}

// Effect represents a visual effect applied to a node: drop/inner shadows and
// layer/background blurs.
type Effect struct {
	Type   string  `json:"type"`
	Radius float64 `json:"radius"`
	Color  *Color  `json:"color,omitempty"`
	Offset *Vector `json:"offset,omitempty"`
	Spread float64 `json:"spread,omitempty"`
}

// Vector represents a 2D offset with X and Y values.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TypeStyle represents the text styling properties of a TEXT node. A LineHeightPx
// of zero means the node has no fixed pixel line height and consumers should fall
// back to a keyword.
type TypeStyle struct {
	FontFamily     string  `json:"fontFamily"`
	FontWeight     float64 `json:"fontWeight"`
	FontSize       float64 `json:"fontSize"`
	LineHeightPx   float64 `json:"lineHeightPx"`
	LetterSpacing  float64 `json:"letterSpacing"`
	TextCase       string  `json:"textCase,omitempty"`
	TextDecoration string  `json:"textDecoration,omitempty"`
}

// Rectangle represents a bounding box with position and dimensions.
type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
