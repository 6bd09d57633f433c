// Package plan checks merge schemas without real implementations.
//
// A plan file describes a stub target (its name, kind and the members it
// starts with), a catalog of stub fragments (member names and dependency
// lists) and a merge schema. Checking a plan:
//  1. Register every catalog fragment with stub callables
//  2. Lint each schema reference on its own → diagnostics
//  3. Structure the stub target for real (skipped on lint errors)
//  4. Report the resulting member chains per scope
package plan
