package mixin

import "strings"

// checkInstall applies the conflict rules to one member about to be
// installed on a scope:
//
//  1. every declared dependency must resolve on the scope
//  2. mergeOver needs an existing member to override
//  3. plain merge must not replace an existing member
//  4. hooks need an existing member to attach to
func checkInstall(strategy Strategy, mixin, member string, exists bool, missing []string) error {
	if len(missing) > 0 {
		err := newError(CodeMissingDependency, mixin, member,
			"missing dependencies for %q: [%s]", member, joinNames(missing))
		err.Missing = missing

		return err
	}

	if !exists && strategy.Override() {
		return newError(CodeOverrideOfMissingMember, mixin, member,
			"attempting to override property %q, but property does not yet exist; did you mean to use merge?", member)
	}

	if exists && !strategy.Hook() && !strategy.Override() {
		return newError(CodeDuplicateMember, mixin, member,
			"attempting to add new property %q, but property already exists; did you mean to use mergeOver?", member)
	}

	if strategy.Hook() && !exists {
		return newError(CodeHookOnMissingMember, mixin, member,
			"invalid attempt to use %s when %q does not yet exist", strategy, member)
	}

	return nil
}

// missingDependencies lists the declared dependencies that do not resolve on
// scope, in declaration order.
func missingDependencies(scope *Scope, impl Implementation) []string {
	var missing []string

	for _, dep := range impl.Depends {
		if !scope.Has(dep) {
			missing = append(missing, dep)
		}
	}

	return missing
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}
