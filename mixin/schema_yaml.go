package mixin

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadSchemaFile loads and parses a YAML merge schema from path.
func LoadSchemaFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return ParseSchema(data)
}

// ParseSchema parses a YAML merge schema:
//
//	mergeOver:
//	  - WaterAnimal(swim)
//	merge:
//	  - LandAnimal(hunt, walk as walkSlow)
//	  - WaterTransition: WaterAnimal(transitionToLand)
//	    overrideDepends: transitionToLand:[swim,walkSlow]
//	instance:
//	  append: [Logging]
func ParseSchema(data []byte) (*Schema, error) {
	var s Schema

	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	return &s, nil
}

// UnmarshalYAML implements custom YAML unmarshaling for Schema. Key order is
// preserved. A strategy value is a list of references or a single one.
func (s *Schema) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("expected mapping of strategy to references, got %v", kindName(node.Kind))
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		value := node.Content[i+1]

		if key == InstanceKey {
			var nested Schema
			if err := value.Decode(&nested); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}

			s.entries = append(s.entries, SchemaEntry{Key: key, Nested: &nested})

			continue
		}

		refs, err := decodeRefs(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}

		s.Add(key, refs...)
	}

	return nil
}

func decodeRefs(node *yaml.Node) ([]Ref, error) {
	if node.Kind != yaml.SequenceNode {
		var r Ref
		if err := node.Decode(&r); err != nil {
			return nil, err
		}

		return []Ref{r}, nil
	}

	refs := make([]Ref, 0, len(node.Content))

	for _, item := range node.Content {
		var r Ref
		if err := item.Decode(&r); err != nil {
			return nil, err
		}

		refs = append(refs, r)
	}

	return refs, nil
}

// UnmarshalYAML implements custom YAML unmarshaling for Ref.
// Accepts:
//   - Compact string: "LandAnimal(run, walk as walkSlow)"
//   - Labelled lookup: {Slow: "LandAnimal(walk)", use: [...], overrideDepends: "..."}
//   - Instance wrapper: {instance: "LandAnimal(run)"} or {instance: {...}}
//   - Instance flag: {Slow: "LandAnimal(walk)", instance: true}
//
// Inline fragments carry Go callables and cannot be expressed in YAML.
func (r *Ref) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value == "" {
			return fmt.Errorf("line %d: empty mixin reference", node.Line)
		}

		*r = Ref{Lookup: node.Value}

		return nil

	case yaml.MappingNode:
		return r.decodeMapping(node)

	default:
		return fmt.Errorf("line %d: expected string or mapping reference, got %v", node.Line, kindName(node.Kind))
	}
}

func (r *Ref) decodeMapping(node *yaml.Node) error {
	var out Ref

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		value := node.Content[i+1]

		switch key {
		case "use":
			use, err := decodeStrings(value)
			if err != nil {
				return fmt.Errorf("line %d: use: %w", value.Line, err)
			}

			out.Use = use

		case "overrideDepends":
			if value.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: overrideDepends must be a string", value.Line)
			}

			out.OverrideDepends = value.Value

		case InstanceKey:
			if value.Kind == yaml.ScalarNode && value.Tag == "!!bool" {
				var flag bool
				if err := value.Decode(&flag); err != nil {
					return err
				}

				out.Instance = out.Instance || flag

				continue
			}

			var inner Ref
			if err := value.Decode(&inner); err != nil {
				return err
			}

			if out.Lookup != "" {
				return fmt.Errorf("line %d: reference names more than one mixin", value.Line)
			}

			out.Name, out.Lookup = inner.Name, inner.Lookup
			out.Use = append(out.Use, inner.Use...)
			out.Instance = true

			if inner.OverrideDepends != "" {
				out.OverrideDepends = inner.OverrideDepends
			}

		default:
			if out.Lookup != "" {
				return fmt.Errorf("line %d: reference names more than one mixin (%q)", node.Content[i].Line, key)
			}

			if value.Kind != yaml.ScalarNode || value.Value == "" {
				return fmt.Errorf("line %d: mixin %q must reference a registered name; inline fragments are not supported in YAML",
					node.Content[i].Line, key)
			}

			out.Name, out.Lookup = key, value.Value
		}
	}

	if out.Lookup == "" {
		return fmt.Errorf("line %d: reference does not name a mixin", node.Line)
	}

	*r = out

	return nil
}

// decodeStrings accepts a single string or a list of strings.
func decodeStrings(node *yaml.Node) ([]string, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value == "" {
			return nil, nil
		}

		return []string{node.Value}, nil

	case yaml.SequenceNode:
		var out []string
		if err := node.Decode(&out); err != nil {
			return nil, err
		}

		return out, nil

	default:
		return nil, fmt.Errorf("expected string or array, got %v", kindName(node.Kind))
	}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
