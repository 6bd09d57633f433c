package plan

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"mixer/internal/diagnostic"
)

// Report is the outcome of checking one plan.
type Report struct {
	File        string                 `yaml:"file,omitempty"`
	Target      string                 `yaml:"target"`
	Members     []MemberRow            `yaml:"members,omitempty"`
	Diagnostics diagnostic.Diagnostics `yaml:"diagnostics"`
}

// MemberRow is one own member of a target scope after the dry run.
type MemberRow struct {
	Scope  string `yaml:"scope"`
	Member string `yaml:"member"`
	Chain  string `yaml:"chain"`
}

// Valid reports whether the plan produced no errors.
func (r *Report) Valid() bool {
	return r.Diagnostics.IsValid()
}

// WriteTable renders the member chains and diagnostics as tables.
func (r *Report) WriteTable(w io.Writer) error {
	title := r.Target
	if r.File != "" {
		title = r.File + " (" + r.Target + ")"
	}

	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}

	if len(r.Members) > 0 {
		t := newTable(w)
		t.AppendHeader(table.Row{"Scope", "Member", "Chain"})

		for _, m := range r.Members {
			t.AppendRow(table.Row{m.Scope, m.Member, m.Chain})
		}

		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 1, AutoMerge: true},
		})
		t.Render()
	}

	all := r.Diagnostics.All()
	if len(all) == 0 {
		_, err := fmt.Fprintln(w, "no diagnostics")
		return err
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"Severity", "Code", "Mixin", "Member", "Message"})

	for _, d := range all {
		msg := d.Message
		for _, s := range d.Suggestions {
			msg += "\n  " + s
		}

		t.AppendRow(table.Row{d.Severity.String(), d.Code, d.Mixin, d.Member, msg})
	}

	t.Render()

	return nil
}

// WriteYAML renders reports as a YAML list.
func WriteYAML(w io.Writer, reports []*Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(reports); err != nil {
		return fmt.Errorf("failed to encode reports: %w", err)
	}

	return enc.Close()
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)

	style := table.StyleLight
	style.Options.DrawBorder = false
	t.SetStyle(style)

	return t
}
