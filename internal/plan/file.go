package plan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mixer/mixin"
)

// File is a dry-run plan: a stub target, a catalog of stub fragments and the
// merge schema applied to the target.
type File struct {
	Target    TargetSpec    `yaml:"target"`
	Fragments Catalog       `yaml:"fragments"`
	Schema    *mixin.Schema `yaml:"schema"`
}

// TargetKind selects what the schema is applied to.
type TargetKind string

const (
	// KindType applies the schema to a type: shared members are type-level,
	// instance members are inherited by objects.
	KindType TargetKind = "type"
	// KindObject applies the schema to an object of a stub type.
	KindObject TargetKind = "object"
)

// TargetSpec describes the stub target and the members it starts with.
type TargetSpec struct {
	Name     string     `yaml:"name"`
	Kind     TargetKind `yaml:"kind,omitempty"`
	Shared   []string   `yaml:"shared,omitempty"`
	Instance []string   `yaml:"instance,omitempty"`
}

// Catalog is an ordered set of stub fragments keyed by mixin name.
type Catalog struct {
	names []string
	specs map[string]FragmentSpec
}

// FragmentSpec lists the members of one stub fragment in declaration order.
type FragmentSpec struct {
	Members []MemberSpec
}

// MemberSpec is a stub member. HasDepends distinguishes "walk: []" from a
// plain callable written as "walk: ~".
type MemberSpec struct {
	Name       string
	Depends    []string
	HasDepends bool
}

// LoadFile loads and parses a plan file from path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse parses and validates a plan file.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse plan YAML: %w", err)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Validate checks the parts of a plan that do not need the engine.
func (f *File) Validate() error {
	if f.Target.Name == "" {
		return fmt.Errorf("target.name is required")
	}

	switch f.Target.Kind {
	case "":
		f.Target.Kind = KindType
	case KindType, KindObject:
	default:
		return fmt.Errorf("target.kind must be %q or %q, got %q", KindType, KindObject, f.Target.Kind)
	}

	return nil
}

// Names returns fragment names in file order.
func (c Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

// Get returns the fragment spec registered under name.
func (c Catalog) Get(name string) (FragmentSpec, bool) {
	s, ok := c.specs[name]
	return s, ok
}

// Len returns the number of fragments.
func (c Catalog) Len() int {
	return len(c.names)
}

// UnmarshalYAML implements custom YAML unmarshaling for Catalog.
// Fragment order follows the file; a repeated name is an error.
func (c *Catalog) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: fragments must be a mapping of name to members", node.Line)
	}

	c.specs = make(map[string]FragmentSpec, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value

		if _, dup := c.specs[name]; dup {
			return fmt.Errorf("line %d: duplicate fragment %q", node.Content[i].Line, name)
		}

		var spec FragmentSpec
		if err := node.Content[i+1].Decode(&spec); err != nil {
			return fmt.Errorf("fragment %s: %w", name, err)
		}

		c.names = append(c.names, name)
		c.specs[name] = spec
	}

	return nil
}

// UnmarshalYAML implements custom YAML unmarshaling for FragmentSpec.
// Accepts:
//   - Member with no dependencies: "walk: ~"
//   - Single dependency: "transitionToLand: walk"
//   - Dependency list: "transitionToLand: [swim, walk]"
func (s *FragmentSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected mapping of member to dependencies", node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		m := MemberSpec{Name: node.Content[i].Value}
		value := node.Content[i+1]

		switch value.Kind {
		case yaml.ScalarNode:
			if value.Tag != "!!null" && value.Value != "" {
				m.Depends, m.HasDepends = []string{value.Value}, true
			}

		case yaml.SequenceNode:
			deps := []string{}
			if err := value.Decode(&deps); err != nil {
				return fmt.Errorf("member %s: %w", m.Name, err)
			}

			m.Depends, m.HasDepends = deps, true

		default:
			return fmt.Errorf("line %d: member %s: expected dependency list", value.Line, m.Name)
		}

		s.Members = append(s.Members, m)
	}

	return nil
}

// Build turns the spec into a fragment whose members return
// "<mixin>.<member>".
func (s FragmentSpec) Build(mixinName string) *mixin.Fragment {
	f := mixin.NewFragment()

	for _, m := range s.Members {
		fn := stub(mixinName + "." + m.Name)

		if m.HasDepends {
			f.Action(m.Name, fn, m.Depends...)
			continue
		}

		f.Fn(m.Name, fn)
	}

	return f
}

func stub(label string) mixin.Func {
	return func(mixin.Self, ...any) (any, error) { return label, nil }
}
