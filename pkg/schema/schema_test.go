package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	require.NoError(t, Validate())
}

func TestKindsCoverEveryDefinition(t *testing.T) {
	kinds := Kinds()
	require.Len(t, kinds, 9)

	seen := map[EntityKind]bool{}
	for _, kind := range kinds {
		assert.False(t, seen[kind], "kind %s listed twice", kind)
		seen[kind] = true

		def, err := Lookup(kind)
		require.NoError(t, err)
		assert.Equal(t, kind, def.Kind)
	}
}

func TestLookupMappings(t *testing.T) {
	tests := []struct {
		kind         EntityKind
		relationship string
		display      string
		field        string
	}{
		{Topic, "HAS_TOPIC", "name", "topics"},
		{AgeGroup, "RECOMMENDED_FOR", "age_label", "age_groups"},
		{GuidanceStyle, "USES_STYLE", "style_name", "guidance_styles"},
		{ActionableAdvice, "HAS_ACTIONABLE_ADVICE", "content", "actionable_advice"},
		{Source, "CITED_FROM", "name", "sources"},
	}

	for _, tt := range tests {
		def, err := Lookup(tt.kind)
		require.NoError(t, err)
		assert.Equal(t, tt.relationship, def.Relationship)
		assert.Equal(t, tt.display, def.DisplayProperty)
		assert.Equal(t, tt.field, def.ResultField)
	}
}

func TestLookupUnknownKind(t *testing.T) {
	_, err := Lookup(EntityKind(42))
	assert.Error(t, err)
}

func TestDefaultIndexSpec(t *testing.T) {
	spec := DefaultIndexSpec()
	assert.Equal(t, "advice_embedding", spec.Name)
	assert.Equal(t, AdviceLabel, spec.Label)
	assert.Equal(t, 1536, spec.Dimensions)
	assert.Equal(t, "cosine", spec.Similarity)
}
