package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gocontrast/adapters/excel"
	"gocontrast/adapters/jsondesign"
	"gocontrast/app"
	"gocontrast/internal"
	"gocontrast/internal/config"
	"gocontrast/internal/errors"
	"gocontrast/internal/paradigm"
	"gocontrast/ports"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: reading .env: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		os.Exit(fail(os.Stderr, err))
	}

	svc, err := newService(cfg)
	if err != nil {
		os.Exit(fail(os.Stderr, err))
	}

	if err := newRootCmd(svc, cfg).Execute(); err != nil {
		os.Exit(fail(os.Stderr, err))
	}
}

func newService(cfg *config.Config) (*app.ContrastService, error) {
	level, _ := internal.ParseLevel(cfg.Log.Level)
	reg, err := paradigm.Default()
	if err != nil {
		return nil, errors.FromDomain(err)
	}
	return app.NewContrastService(reg, internal.NewLogger(level), app.ServiceOptions{
		MaxConcurrent: cfg.Batch.MaxConcurrent,
		Timeout:       cfg.Batch.Timeout,
	}), nil
}

// fail prints err with its application code and returns the exit status
func fail(w io.Writer, err error) int {
	fmt.Fprintf(w, "Error [%s]: %v\n", errors.GetCode(errors.FromDomain(err)), err)
	return 1
}

func newRootCmd(svc *app.ContrastService, cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gocontrast",
		Short:         "Resolve named fMRI contrast vectors for a paradigm and its design matrix",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Output.Format = strings.ToLower(cfg.Output.Format)
			if cfg.Output.Format != config.FormatJSON && cfg.Output.Format != config.FormatText {
				return errors.InvalidInput("--format must be json or text")
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfg.Output.Format, "format", cfg.Output.Format, "Output format: json|text")

	rootCmd.AddCommand(
		newResolveCmd(svc, cfg),
		newListCmd(svc, cfg),
		newBatchCmd(svc, cfg),
	)
	return rootCmd
}

func newResolveCmd(svc *app.ContrastService, cfg *config.Config) *cobra.Command {
	var designPath string
	var introspect bool

	cmd := &cobra.Command{
		Use:   "resolve [paradigm] [columns...]",
		Short: "Resolve the contrasts of one paradigm",
		Long: `Resolve the contrasts of one paradigm against design matrix columns.

Columns come from the arguments or from --design, which accepts the header row
of an xlsx or csv design matrix (DESIGN_SHEET selects the sheet) or a JSON
document (DESIGN_JSON_PATH locates the column array).

Examples:
  gocontrast resolve bang talk no_talk talk_derivative constant
  gocontrast resolve hcp_motor --design sub-01_design.xlsx --format text
  gocontrast resolve preference_faces --introspect`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.ResolveRequest{
				Paradigm:   args[0],
				Columns:    args[1:],
				Introspect: introspect,
			}
			if designPath != "" {
				req.Source = designSource(designPath, cfg)
			}

			res, err := svc.Resolve(cmd.Context(), req)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), cfg, res)
		},
	}

	cmd.Flags().StringVar(&designPath, "design", "", "Design matrix file (xlsx, csv or json)")
	cmd.Flags().BoolVar(&introspect, "introspect", false, "List declared contrast names without a design matrix")
	return cmd
}

func newListCmd(svc *app.ContrastService, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every resolvable paradigm id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderCatalog(cmd.OutOrStdout(), cfg, svc.Catalog())
		},
	}
}

func newBatchCmd(svc *app.ContrastService, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "batch [manifest.json]",
		Short: "Resolve every item of a batch manifest",
		Long: `Resolve every item of a batch manifest in parallel.

The manifest is a JSON array, or an object with an "items" array. Each item has
a "paradigm" and either "columns", a "design" file path relative to the manifest
or "introspect": true. CONTRAST_MAX_CONCURRENT bounds parallelism.

Example manifest:
  {"items": [
    {"paradigm": "bang", "design": "sub-01/bang.xlsx"},
    {"paradigm": "stroop", "columns": ["incongruent", "congruent"]}
  ]}`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.WithCode(errors.CodeInvalidInput, errors.Wrap(err, "reading batch manifest"))
			}
			items, err := parseManifest(data)
			if err != nil {
				return err
			}

			base := filepath.Dir(args[0])
			reqs := make([]app.ResolveRequest, len(items))
			for i, item := range items {
				reqs[i] = app.ResolveRequest{
					Paradigm:   item.Paradigm,
					Columns:    item.Columns,
					Introspect: item.Introspect,
				}
				if item.Design != "" {
					path := item.Design
					if !filepath.IsAbs(path) {
						path = filepath.Join(base, path)
					}
					reqs[i].Source = designSource(path, cfg)
				}
			}

			results := svc.ResolveBatch(cmd.Context(), reqs)
			if err := renderBatch(cmd.OutOrStdout(), cfg, results); err != nil {
				return err
			}
			if n := countFailed(results); n > 0 {
				return errors.New(errors.CodeBatchFailed, fmt.Sprintf("%d of %d batch items failed", n, len(results)))
			}
			return nil
		},
	}
}

func countFailed(results []app.BatchResult) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// designSource picks the adapter for path by extension
func designSource(path string, cfg *config.Config) ports.DesignSource {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return jsondesign.NewFileReader(path, cfg.Design.JSONPath)
	}
	return excel.NewDesignReader(excel.DesignConfig{FilePath: path, Sheet: cfg.Design.Sheet})
}
