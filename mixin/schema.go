package mixin

// InstanceKey is the reserved schema key whose entries target the instance
// scope.
const InstanceKey = "instance"

// Schema maps composition strategies to mixin references, in order. Keys
// are strategy names optionally suffixed with digits ("merge2") so one
// strategy can appear more than once.
type Schema struct {
	entries []SchemaEntry
}

// SchemaEntry is one key of a schema. Nested is set only for InstanceKey.
type SchemaEntry struct {
	Key    string
	Refs   []Ref
	Nested *Schema
}

// NewSchema creates an empty schema.
func NewSchema() *Schema {
	return &Schema{}
}

// Add appends a new entry for refs under key. A repeated key becomes a
// separate entry applied in call order.
func (s *Schema) Add(key string, refs ...Ref) *Schema {
	s.entries = append(s.entries, SchemaEntry{Key: key, Refs: refs})

	return s
}

// Merge adds refs under the merge strategy.
func (s *Schema) Merge(refs ...Ref) *Schema { return s.Add(StrategyMerge.String(), refs...) }

// MergeOver adds refs under the mergeOver strategy.
func (s *Schema) MergeOver(refs ...Ref) *Schema { return s.Add(StrategyMergeOver.String(), refs...) }

// Prepend adds refs under the prepend strategy.
func (s *Schema) Prepend(refs ...Ref) *Schema { return s.Add(StrategyPrepend.String(), refs...) }

// AwaitPrepend adds refs under the awaitPrepend strategy.
func (s *Schema) AwaitPrepend(refs ...Ref) *Schema {
	return s.Add(StrategyAwaitPrepend.String(), refs...)
}

// Append adds refs under the append strategy.
func (s *Schema) Append(refs ...Ref) *Schema { return s.Add(StrategyAppend.String(), refs...) }

// AwaitAppend adds refs under the awaitAppend strategy.
func (s *Schema) AwaitAppend(refs ...Ref) *Schema {
	return s.Add(StrategyAwaitAppend.String(), refs...)
}

// Instance returns the nested schema applied to the instance scope,
// creating it at the current position on first use.
func (s *Schema) Instance() *Schema {
	for _, e := range s.entries {
		if e.Nested != nil {
			return e.Nested
		}
	}

	nested := NewSchema()
	s.entries = append(s.entries, SchemaEntry{Key: InstanceKey, Nested: nested})

	return nested
}

// Entries returns the schema entries in order.
func (s *Schema) Entries() []SchemaEntry {
	out := make([]SchemaEntry, len(s.entries))
	copy(out, s.entries)

	return out
}

// Len returns the number of entries.
func (s *Schema) Len() int {
	return len(s.entries)
}
