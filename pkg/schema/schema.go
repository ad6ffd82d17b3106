// Package schema defines the fixed knowledge graph schema the retrieval
// pipeline is allowed to traverse.
//
// The schema is a closed enumeration: one EntityKind per auxiliary node kind,
// each with a static mapping to its node label, relationship type and display
// property. Query construction consumes these mappings instead of formatting
// label strings at query time, so no user-supplied text can ever reach a
// Cypher identifier position.
package schema

import "fmt"

// AdviceLabel is the label of the central retrievable node kind.
const AdviceLabel = "Advice"

// EmbeddingProperty is the node property holding the advice embedding vector.
const EmbeddingProperty = "embedding"

// AgeGroupAny is the sentinel age group display name that matches every age
// filter. An advice tagged "Any" is never excluded on age grounds.
const AgeGroupAny = "Any"

// EntityKind identifies one of the fixed auxiliary node kinds attached to an
// Advice node.
type EntityKind int

const (
	Topic EntityKind = iota
	SubTopic
	AgeGroup
	GuidanceStyle
	TemporalContext
	ScenarioNote
	Author
	Source
	ActionableAdvice
)

// Definition is the static mapping for one entity kind.
type Definition struct {
	// Kind is the entity kind this definition describes.
	Kind EntityKind
	// Label is the node label in the graph store.
	Label string
	// Relationship is the type of the Advice -> entity edge.
	Relationship string
	// DisplayProperty is the property holding the entity's display name.
	DisplayProperty string
	// FallbackProperty is consulted when DisplayProperty is absent. Empty
	// when the kind has no fallback.
	FallbackProperty string
	// ResultField is the record key the traversal returns this kind under.
	ResultField string
}

// definitions is the whole schema, in traversal order. Order matters: it is
// the order OPTIONAL MATCH clauses appear in the generated query and the
// order kinds are reported in results.
var definitions = []Definition{
	{Topic, "Topic", "HAS_TOPIC", "name", "", "topics"},
	{SubTopic, "SubTopic", "HAS_SUBTOPIC", "name", "", "subtopics"},
	{AgeGroup, "AgeGroup", "RECOMMENDED_FOR", "age_label", "name", "age_groups"},
	{GuidanceStyle, "GuidanceStyle", "USES_STYLE", "style_name", "name", "guidance_styles"},
	{TemporalContext, "TemporalContext", "SUGGESTED_AT", "name", "", "temporal_contexts"},
	{ScenarioNote, "ScenarioNote", "HAS_SCENARIO_NOTE", "name", "", "scenario_notes"},
	{Author, "Author", "WRITTEN_BY", "name", "", "authors"},
	{Source, "Source", "CITED_FROM", "name", "", "sources"},
	{ActionableAdvice, "ActionableAdvice", "HAS_ACTIONABLE_ADVICE", "content", "name", "actionable_advice"},
}

// Kinds returns every entity kind in traversal order.
func Kinds() []EntityKind {
	kinds := make([]EntityKind, len(definitions))
	for i, def := range definitions {
		kinds[i] = def.Kind
	}
	return kinds
}

// Definitions returns the full schema in traversal order. The returned slice
// is a copy; callers may not mutate the registry.
func Definitions() []Definition {
	defs := make([]Definition, len(definitions))
	copy(defs, definitions)
	return defs
}

// Lookup returns the definition for a kind.
func Lookup(kind EntityKind) (Definition, error) {
	for _, def := range definitions {
		if def.Kind == kind {
			return def, nil
		}
	}
	return Definition{}, fmt.Errorf("unknown entity kind %d", int(kind))
}

// String returns the node label of the kind.
func (k EntityKind) String() string {
	def, err := Lookup(k)
	if err != nil {
		return fmt.Sprintf("EntityKind(%d)", int(k))
	}
	return def.Label
}

// IndexSpec describes the vector index the retrieval pipeline depends on.
type IndexSpec struct {
	Name       string
	Label      string
	Property   string
	Dimensions int
	Similarity string
}

// DefaultIndexSpec returns the index specification matching the ingestion
// pipeline's output: cosine similarity over 1536-dimensional embeddings on
// Advice nodes.
func DefaultIndexSpec() IndexSpec {
	return IndexSpec{
		Name:       "advice_embedding",
		Label:      AdviceLabel,
		Property:   EmbeddingProperty,
		Dimensions: 1536,
		Similarity: "cosine",
	}
}

// Validate checks the registry for internal consistency. It is called from
// init so a malformed schema fails at startup, not at query time.
func Validate() error {
	seenRel := map[string]EntityKind{}
	seenField := map[string]EntityKind{}
	for _, def := range definitions {
		if def.Label == "" || def.Relationship == "" || def.DisplayProperty == "" || def.ResultField == "" {
			return fmt.Errorf("schema: incomplete definition for kind %s", def.Label)
		}
		if prev, dup := seenRel[def.Relationship]; dup {
			return fmt.Errorf("schema: relationship %s maps to both %s and %s", def.Relationship, prev, def.Kind)
		}
		if prev, dup := seenField[def.ResultField]; dup {
			return fmt.Errorf("schema: result field %s maps to both %s and %s", def.ResultField, prev, def.Kind)
		}
		seenRel[def.Relationship] = def.Kind
		seenField[def.ResultField] = def.Kind
	}
	return nil
}

func init() {
	if err := Validate(); err != nil {
		panic(err)
	}
}
