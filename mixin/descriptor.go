package mixin

import (
	"slices"

	"mixer/internal/common"
	"mixer/internal/syntax"
)

// UseSpec selects a fragment member and the name it is installed under.
type UseSpec = syntax.UseSpec

// Descriptor is a normalized mixin reference, built fresh for every
// structuring pass.
type Descriptor struct {
	// Name is the mixin name used in errors.
	Name string
	// Keys are the fragment member names in declaration order.
	Keys []string
	// Logic maps member names to implementations. It is owned by the
	// descriptor and never shared with the registry.
	Logic map[string]Implementation
	// Use restricts and renames the installed members. Empty means all keys.
	Use []UseSpec
	// UsesInstance targets the instance scope instead of the shared scope.
	UsesInstance bool
}

func newDescriptor(name string, f *Fragment) *Descriptor {
	c := f.Clone()

	return &Descriptor{
		Name:  name,
		Keys:  c.keys,
		Logic: c.logic,
	}
}

// Install pairs a fragment key with the member name it is installed under.
type Install struct {
	Key  string
	Name string
}

// Installs resolves the use list against the keys, in declaration order.
// Every use entry must name an existing key; all offenders are reported
// together.
func (d *Descriptor) Installs() ([]Install, error) {
	if len(d.Use) == 0 {
		out := make([]Install, 0, len(d.Keys))
		for _, k := range d.Keys {
			out = append(out, Install{Key: k, Name: k})
		}

		return out, nil
	}

	bad := common.Filter(d.Use, func(u UseSpec) bool {
		return !slices.Contains(d.Keys, u.Original)
	})

	if len(bad) > 0 {
		names := make([]string, 0, len(bad))
		for _, u := range bad {
			names = append(names, u.String())
		}

		err := newError(CodeInvalidUseReference, d.Name, "",
			"invalid export: mixin attributes do not exist: %s", joinNames(names))
		err.Missing = names

		return nil, err
	}

	var out []Install

	for _, k := range d.Keys {
		for _, u := range d.Use {
			if u.Original == k && !containsInstall(out, k, u.Installed()) {
				out = append(out, Install{Key: k, Name: u.Installed()})
			}
		}
	}

	return out, nil
}

func containsInstall(list []Install, key, name string) bool {
	return slices.ContainsFunc(list, func(i Install) bool { return i.Key == key && i.Name == name })
}
