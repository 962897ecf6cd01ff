package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gocontrast/app"
	"gocontrast/internal/config"
	"gocontrast/internal/errors"
)

func writeJSON(w io.Writer, cfg *config.Config, v interface{}) error {
	enc := json.NewEncoder(w)
	if cfg.Output.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func render(w io.Writer, cfg *config.Config, res *app.Resolution) error {
	if cfg.Output.Format == config.FormatJSON {
		return writeJSON(w, cfg, res)
	}
	writeResolutionText(w, res)
	return nil
}

func writeResolutionText(w io.Writer, res *app.Resolution) {
	fmt.Fprintf(w, "paradigm %s  run %s  fingerprint %s\n", res.Paradigm, res.RunID, res.Fingerprint.Short())
	if res.Introspect {
		for _, name := range res.Contrasts.Names() {
			fmt.Fprintf(w, "  %s\n", name)
		}
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "  contrast\tweights\n")
	for _, name := range res.Contrasts.Names() {
		c := res.Contrasts[name]
		for i, row := range c.RawRows() {
			label := name
			if c.IsStacked() {
				label = fmt.Sprintf("%s[%d]", name, i)
			}
			fmt.Fprintf(tw, "  %s\t%s\n", label, formatRow(row))
		}
	}
	tw.Flush()
}

func formatRow(row []float64) string {
	parts := make([]string, len(row))
	for i, v := range row {
		parts[i] = strconv.FormatFloat(v, 'g', 6, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func renderCatalog(w io.Writer, cfg *config.Config, report app.CatalogReport) error {
	if cfg.Output.Format == config.FormatJSON {
		return writeJSON(w, cfg, report)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "id\trule\tbuilder\tbasis\tcontrasts\n")
	for _, e := range report.Entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", e.ID, e.Rule, e.Builder, e.Basis, len(e.Names))
	}
	tw.Flush()
	fmt.Fprintf(w, "%d ids, catalog %s\n", len(report.Entries), report.Hash)
	return nil
}

// batchLine is the JSON shape of one batch result
type batchLine struct {
	Index      int             `json:"index"`
	Paradigm   string          `json:"paradigm"`
	Code       string          `json:"code,omitempty"`
	Error      string          `json:"error,omitempty"`
	Resolution *app.Resolution `json:"resolution,omitempty"`
}

func renderBatch(w io.Writer, cfg *config.Config, results []app.BatchResult) error {
	if cfg.Output.Format == config.FormatJSON {
		lines := make([]batchLine, len(results))
		for i, r := range results {
			lines[i] = batchLine{Index: r.Index, Paradigm: r.Paradigm, Resolution: r.Resolution}
			if r.Err != nil {
				lines[i].Code = errors.GetCode(r.Err)
				lines[i].Error = r.Err.Error()
			}
		}
		return writeJSON(w, cfg, lines)
	}

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "#%d %s: error [%s]: %v\n", r.Index, r.Paradigm, errors.GetCode(r.Err), r.Err)
			continue
		}
		fmt.Fprintf(w, "#%d ", r.Index)
		writeResolutionText(w, r.Resolution)
	}
	return nil
}
