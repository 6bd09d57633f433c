package syntax

import (
	"errors"
	"strings"

	"mixer/internal/common"
)

// ParseReference parses "Name" or "Name(use1, use2 as alias2, ...)".
func ParseReference(s string) (Reference, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return Reference{}, newError("reference", s, "empty reference")
	}

	open := strings.IndexByte(in, '(')
	if open < 0 {
		if strings.IndexByte(in, ')') >= 0 {
			return Reference{}, newError("reference", s, "unbalanced parenthesis")
		}

		if !common.IsIdent(in) {
			return Reference{}, newError("reference", s, "invalid mixin name %q", in)
		}

		return Reference{Name: in}, nil
	}

	name := strings.TrimSpace(in[:open])
	if !common.IsIdent(name) {
		return Reference{}, newError("reference", s, "invalid mixin name %q", name)
	}

	if !strings.HasSuffix(in, ")") {
		return Reference{}, newError("reference", s, "unbalanced parenthesis")
	}

	inner := in[open+1 : len(in)-1]
	if strings.ContainsAny(inner, "()") {
		return Reference{}, newError("reference", s, "unbalanced parenthesis")
	}

	if strings.TrimSpace(inner) == "" {
		return Reference{}, newError("reference", s, "empty use list")
	}

	use, err := ParseUseList(strings.Split(inner, ","))
	if err != nil {
		var se *Error
		if errors.As(err, &se) {
			return Reference{}, newError("reference", s, "%s", se.Msg)
		}

		return Reference{}, err
	}

	return Reference{Name: name, Use: use, HasUse: true}, nil
}

// ParseUse parses a single "member" or "member as alias" entry.
func ParseUse(s string) (UseSpec, error) {
	normalized := strings.Join(strings.Fields(s), " ")
	if normalized == "" {
		return UseSpec{}, newError("use", s, "empty use entry")
	}

	parts := strings.Split(normalized, " as ")
	if len(parts) > 2 {
		return UseSpec{}, newError("use", s, "more than one alias")
	}

	original, alias := common.Unpack2(parts)
	if !common.IsIdent(original) {
		return UseSpec{}, newError("use", s, "invalid member name %q", original)
	}

	if len(parts) == 2 && !common.IsIdent(alias) {
		return UseSpec{}, newError("use", s, "invalid alias %q", alias)
	}

	return UseSpec{Original: original, Alias: alias}, nil
}

// ParseUseList parses every entry of a use list, failing on the first bad one.
func ParseUseList(entries []string) ([]UseSpec, error) {
	out := make([]UseSpec, 0, len(entries))

	for _, e := range entries {
		u, err := ParseUse(e)
		if err != nil {
			return nil, err
		}

		out = append(out, u)
	}

	return out, nil
}

// ParseOverrides parses "key1:[dep_a,dep_b],key2:[dep_c]".
// An empty bracket list yields an empty, non-nil dependency slice.
func ParseOverrides(s string) ([]OverrideSpec, error) {
	rest := strings.TrimSpace(s)
	if rest == "" {
		return nil, newError("override", s, "empty override")
	}

	var out []OverrideSpec

	for {
		colon := strings.IndexByte(rest, ':')
		if colon < 0 {
			return nil, newError("override", s, "missing ':' after member name")
		}

		member := strings.TrimSpace(rest[:colon])
		if !common.IsIdent(member) {
			return nil, newError("override", s, "invalid member name %q", member)
		}

		rest = strings.TrimSpace(rest[colon+1:])
		if !strings.HasPrefix(rest, "[") {
			return nil, newError("override", s, "expected '[' after %q", member+":")
		}

		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, newError("override", s, "unterminated dependency list for %q", member)
		}

		inner := rest[1:end]
		if strings.ContainsAny(inner, "[:") {
			return nil, newError("override", s, "unterminated dependency list for %q", member)
		}

		deps := []string{}

		if strings.TrimSpace(inner) != "" {
			for _, d := range strings.Split(inner, ",") {
				d = strings.TrimSpace(d)
				if !common.IsIdent(d) {
					return nil, newError("override", s, "invalid dependency %q for %q", d, member)
				}

				deps = append(deps, d)
			}
		}

		out = append(out, OverrideSpec{Member: member, Depends: deps})

		rest = strings.TrimSpace(rest[end+1:])
		if rest == "" {
			return out, nil
		}

		if !strings.HasPrefix(rest, ",") {
			return nil, newError("override", s, "expected ',' between overrides")
		}

		rest = strings.TrimSpace(rest[1:])
		if rest == "" {
			return nil, newError("override", s, "trailing ','")
		}
	}
}

// StrategyKey strips the disambiguating numeric suffix from a schema key:
// "merge2" becomes "merge".
func StrategyKey(key string) string {
	return strings.TrimRightFunc(key, func(r rune) bool {
		return r >= '0' && r <= '9'
	})
}
