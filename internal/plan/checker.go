package plan

import (
	"errors"
	"log/slog"
	"slices"
	"strings"

	"mixer/internal/depgraph"
	"mixer/internal/diagnostic"
	"mixer/mixin"
)

// Diagnostic codes produced by the checker itself. Engine failures carry the
// engine's error code.
const (
	CodeDeclaredBeforeDependency = "declared_before_dependency"
	CodeDryRunSkipped            = "dry_run_skipped"
	CodeInternal                 = "internal"
)

// Config holds configuration for the checker.
type Config struct {
	// OrderByDependencies is passed through to the engine.
	OrderByDependencies bool
	// Logger receives the engine's install records.
	Logger *slog.Logger
}

// DefaultConfig returns the default checker configuration.
func DefaultConfig() Config {
	return Config{
		OrderByDependencies: false,
	}
}

// Checker runs plans against stub targets.
type Checker struct {
	config Config
}

// NewChecker creates a new Checker.
func NewChecker(config Config) *Checker {
	return &Checker{config: config}
}

// Check lints every reference of the plan independently, then structures the
// stub target for real and reports the resulting member chains. The dry run
// is skipped when linting already found errors.
func (c *Checker) Check(f *File) *Report {
	report := &Report{Target: f.Target.Name}

	registry := mixin.NewRegistry()
	for _, name := range f.Fragments.Names() {
		spec, _ := f.Fragments.Get(name)
		if err := registry.RegisterFragment(name, spec.Build(name)); err != nil {
			addError(&report.Diagnostics, err)
		}
	}

	engine := mixin.New(registry, mixin.Config{
		OrderByDependencies: c.config.OrderByDependencies,
		Logger:              c.config.Logger,
	})

	if f.Schema == nil {
		report.Diagnostics.AddError(string(mixin.CodeInvalidMergeSchema), "plan has no schema", "", "")
		return report
	}

	var lint diagnostic.Diagnostics

	c.lint(engine, f.Schema, &lint, false)
	report.Diagnostics.Merge(lint)

	if lint.HasErrors() {
		report.Diagnostics.AddInfo(CodeDryRunSkipped, "dry run skipped because of lint errors", "", "")
		return report
	}

	target, scopes := buildTarget(f.Target)

	if err := engine.Structure(target, f.Schema); err != nil {
		addError(&report.Diagnostics, err)
	}

	for _, scope := range scopes {
		for _, m := range scope.Members() {
			report.Members = append(report.Members, MemberRow{
				Scope:  scope.Kind().String(),
				Member: m.Name(),
				Chain:  m.String(),
			})
		}
	}

	return report
}

func (c *Checker) lint(engine *mixin.Engine, schema *mixin.Schema, diags *diagnostic.Diagnostics, instance bool) {
	for _, entry := range schema.Entries() {
		if entry.Nested != nil {
			if instance {
				diags.AddError(string(mixin.CodeInvalidMergeSchema),
					mixin.InstanceKey+" wrapper may only nest one level", "", "")

				continue
			}

			c.lint(engine, entry.Nested, diags, true)

			continue
		}

		if _, err := mixin.ParseStrategy(entry.Key); err != nil {
			addError(diags, err)
		}

		for _, ref := range entry.Refs {
			d, err := engine.Resolve(ref)
			if err != nil {
				addError(diags, err)
				continue
			}

			installs, err := d.Installs()
			if err != nil {
				addError(diags, err)
				continue
			}

			if !c.config.OrderByDependencies {
				lintOrder(d, installs, diags)
			}
		}
	}
}

// lintOrder warns about installed members that depend on a member of the
// same mixin installed after them: in declaration order they fail unless the
// target already has the dependency. Names are the installed ones, so
// filtered members are ignored and aliases count under their new name.
func lintOrder(d *mixin.Descriptor, installs []mixin.Install, diags *diagnostic.Diagnostics) {
	names := make([]string, 0, len(installs))
	keyOf := make(map[string]string, len(installs))

	for _, in := range installs {
		names = append(names, in.Name)
		if _, ok := keyOf[in.Name]; !ok {
			keyOf[in.Name] = in.Key
		}
	}

	depsOf := func(name string) []string { return d.Logic[keyOf[name]].Depends }

	var late []string

	for i, name := range names {
		for _, dep := range depsOf(name) {
			if slices.Contains(names[i+1:], dep) {
				late = append(late, name)
				break
			}
		}
	}

	if len(late) == 0 {
		return
	}

	order, err := depgraph.SortNames(names, depsOf)
	if err != nil {
		diags.AddError(string(mixin.CodeDependencyCycle), err.Error(), d.Name, "")
		return
	}

	for _, name := range late {
		diags.AddWarning(CodeDeclaredBeforeDependency,
			"member is declared before a member it depends on; install order "+strings.Join(order, ", ")+
				" requires order_by_dependencies",
			d.Name, name)
	}
}

// buildTarget creates the stub target and returns the scopes to report, own
// scope first.
func buildTarget(spec TargetSpec) (mixin.Target, []*mixin.Scope) {
	typ := mixin.NewType(spec.Name)
	for _, name := range spec.Instance {
		typ.Define(name, stub(spec.Name+"."+name))
	}

	if spec.Kind == KindObject {
		obj := typ.New()
		for _, name := range spec.Shared {
			obj.Define(name, stub(spec.Name+"."+name))
		}

		shared, _ := obj.Scope(mixin.ScopeShared)

		return obj, []*mixin.Scope{shared, typ.InstanceScope()}
	}

	for _, name := range spec.Shared {
		typ.DefineShared(name, stub(spec.Name+"."+name))
	}

	return typ, []*mixin.Scope{typ.SharedScope(), typ.InstanceScope()}
}

func addError(diags *diagnostic.Diagnostics, err error) {
	var me *mixin.Error
	if !errors.As(err, &me) {
		diags.AddError(CodeInternal, err.Error(), "", "")
		return
	}

	msg := me.Message
	if msg == "" {
		msg = string(me.Code)
	}

	if me.Err != nil {
		msg += ": " + me.Err.Error()
	}

	diags.AddError(string(me.Code), msg, me.Mixin, me.Member, me.Missing...)
}
