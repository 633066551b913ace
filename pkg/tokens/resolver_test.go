package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellenic-development/figma-tokens/pkg/figma"
)

func TestFindByStyleID(t *testing.T) {
	root := figma.Node{
		ID:   "0:0",
		Name: "Document",
		Children: []figma.Node{
			{
				ID:   "1:1",
				Name: "Page",
				Children: []figma.Node{
					{ID: "1:2", Name: "Swatch A", Styles: map[string]string{"fill": "S:1"}},
					{ID: "1:3", Name: "Swatch B", Styles: map[string]string{"fill": "S:2", "effect": "S:9"}},
				},
			},
			{ID: "2:1", Name: "Late Match", Styles: map[string]string{"fill": "S:1"}},
		},
	}

	t.Run("finds node by binding value in any slot", func(t *testing.T) {
		n := FindByStyleID(&root, "S:9")
		require.NotNil(t, n)
		assert.Equal(t, "1:3", n.ID)
	})

	t.Run("first match in visiting order wins", func(t *testing.T) {
		n := FindByStyleID(&root, "S:1")
		require.NotNil(t, n)
		assert.Equal(t, "1:2", n.ID, "pre-order traversal should reach 1:2 before 2:1")
	})

	t.Run("absent style yields nil", func(t *testing.T) {
		assert.Nil(t, FindByStyleID(&root, "S:404"))
	})
}

func TestFindByName(t *testing.T) {
	root := figma.Node{
		ID:   "0:0",
		Name: "Document",
		Children: []figma.Node{
			{ID: "1:1", Name: "Page", Children: []figma.Node{
				{ID: "1:2", Name: "SPACING"},
			}},
			{ID: "2:1", Name: "Spacing"},
		},
	}

	t.Run("matches case-insensitively, first in pre-order", func(t *testing.T) {
		n := FindByName(&root, "spacing")
		require.NotNil(t, n)
		assert.Equal(t, "1:2", n.ID)
	})

	t.Run("exact match only", func(t *testing.T) {
		assert.Nil(t, FindByName(&root, "Spacing Scale"))
	})

	t.Run("root itself can match", func(t *testing.T) {
		n := FindByName(&root, "document")
		require.NotNil(t, n)
		assert.Equal(t, "0:0", n.ID)
	})
}
