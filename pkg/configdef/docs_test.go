package configdef

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docsRegistry() *Registry {
	return NewRegistry().
		Define(Field{
			Key: "hosts", Type: TypeList, Required: true,
			Importance: ImportanceHigh, Group: "Connector", OrderInGroup: 1,
			Doc: "Cluster endpoints.",
		}).
		Define(Field{
			Key: "batch.size", Type: TypeInt, Default: 2000,
			Importance: ImportanceMedium, Group: "Connector", OrderInGroup: 2,
			Doc: "Records per bulk request.",
		}).
		Define(Field{
			Key: "secret", Type: TypePassword, Default: nil,
			Importance: ImportanceLow, Group: "Security", OrderInGroup: 1,
		})
}

func TestDocumentation(t *testing.T) {
	docs := docsRegistry().Documentation()
	require.Len(t, docs, 3)

	assert.Equal(t, "hosts", docs[0].Key)
	assert.Equal(t, "list", docs[0].Type)
	assert.True(t, docs[0].Required)
	assert.Equal(t, "", docs[0].Default)
	assert.Equal(t, "high", docs[0].Importance)

	assert.Equal(t, "batch.size", docs[1].Key)
	assert.Equal(t, "2000", docs[1].Default)

	assert.Equal(t, "secret", docs[2].Key)
	assert.Equal(t, "null", docs[2].Default)
}

func TestRenderMarkdown(t *testing.T) {
	out := docsRegistry().RenderMarkdown()

	assert.Contains(t, out, "## Connector")
	assert.Contains(t, out, "## Security")
	assert.Contains(t, out, "| `hosts` | list | (required) | high | Cluster endpoints. |")
	assert.Contains(t, out, "| `batch.size` | int | 2000 | medium |")

	// Connector group renders before Security.
	assert.Less(t, strings.Index(out, "## Connector"), strings.Index(out, "## Security"))
}
