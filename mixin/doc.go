// Package mixin composes the behavior of a target out of named, reusable
// fragments according to a declarative merge schema.
//
// # Targets
//
// A target owns member tables (scopes) mapping names to callable members.
// A Type has a shared scope for type-level members and an instance scope
// inherited by every Object created from it. An Object has only its own
// shared scope, which falls back to its type's instance scope.
//
// # Strategies
//
//	merge         add a member that does not exist yet
//	mergeOver     replace an existing member; the fragment receives the
//	              previous one as a leading Super argument
//	prepend       run the fragment, then the previous member; return the latter
//	awaitPrepend  as prepend, each step awaited, returns a *Future
//	append        run the previous member, then the fragment; return the former
//	awaitAppend   as append, each step awaited, returns a *Future
//
// # Schemas
//
// A Schema maps strategy keys ("merge", "mergeOver2", ...) to references.
// References are compact strings resolved in the Registry:
//
//	LandAnimal
//	LandAnimal(hunt, walk as walkSlow)
//
// or inline fragments. OverrideDepends ("member:[dep1,dep2]") imposes
// dependency constraints on a fragment without touching its definition.
// Entries under InstanceKey, or references marked Instance, are installed
// into the instance scope.
//
// # Validation
//
// Every install is checked before it happens: declared dependencies must
// resolve, mergeOver and hooks need an existing member, and merge must not
// replace one. Failures are *Error values carrying a Code; a failed pass
// keeps whatever it installed before the failure.
//
// # Chains
//
// Engine.Through folds Transformer functions over a base Type, left to
// right, for layered type derivation without conflict checks.
package mixin
