package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/charmbracelet/huh"
	"github.com/simkit-dev/modelcheck/internal/infrastructure/config"
	"github.com/spf13/cobra"
)

// InitOptions configures the scaffolded configuration.
type InitOptions struct {
	Name          string
	Version       string
	Molecules     []string
	WithEvents    bool
	OutputPath    string
	Force         bool
	NoInteractive bool
}

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Scaffold a new build configuration",
	Long: `Write a starter build configuration with a molecule building block,
a start formula and optionally a dosing event group. The file passes
'modelcheck validate' as written.`,
	Example: `  modelcheck init
  modelcheck init model.yaml --name glucose --molecules Glucose,Insulin --no-interactive`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().String("name", "", "Model name")
	initCmd.Flags().String("version", "0.1.0", "Model version (semver)")
	initCmd.Flags().StringSlice("molecules", nil, "Molecules to declare (comma-separated)")
	initCmd.Flags().Bool("events", true, "Add a dosing event group applying the first molecule")
	initCmd.Flags().Bool("force", false, "Overwrite an existing file")
	initCmd.Flags().Bool("no-interactive", false, "Disable interactive prompts")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	opts := InitOptions{OutputPath: "modelcheck.yaml"}
	if len(args) == 1 {
		opts.OutputPath = args[0]
	}

	opts.Name, _ = cmd.Flags().GetString("name")
	opts.Version, _ = cmd.Flags().GetString("version")
	opts.Molecules, _ = cmd.Flags().GetStringSlice("molecules")
	opts.WithEvents, _ = cmd.Flags().GetBool("events")
	opts.Force, _ = cmd.Flags().GetBool("force")
	opts.NoInteractive, _ = cmd.Flags().GetBool("no-interactive")

	if !opts.NoInteractive {
		if err := promptInitOptions(&opts); err != nil {
			return err
		}
	}

	doc, err := scaffoldDocument(opts)
	if err != nil {
		return err
	}

	if err := writeScaffold(opts.OutputPath, doc, opts.Force); err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s with %d molecule(s)\n", opts.OutputPath, len(doc.Molecules.Molecules))
	return err
}

// promptInitOptions asks for every option not given as a flag.
func promptInitOptions(opts *InitOptions) error {
	if opts.Name == "" {
		err := huh.NewInput().
			Title("Model name").
			Value(&opts.Name).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("name is required")
				}
				return nil
			}).
			Run()
		if err != nil {
			return err
		}
	}

	if len(opts.Molecules) == 0 {
		var molecules string
		err := huh.NewInput().
			Title("Molecules (comma-separated)").
			Placeholder("Glucose, Insulin").
			Value(&molecules).
			Run()
		if err != nil {
			return err
		}
		opts.Molecules = splitList(molecules)
	}

	return huh.NewConfirm().
		Title("Add a dosing event group?").
		Value(&opts.WithEvents).
		Run()
}

// scaffoldDocument builds the starter configuration.
func scaffoldDocument(opts InitOptions) (*config.Document, error) {
	name := strings.TrimSpace(opts.Name)
	if name == "" {
		return nil, errors.New("a model name is required (use --name)")
	}
	if _, err := semver.NewVersion(opts.Version); err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", opts.Version, err)
	}

	molecules := make([]string, 0, len(opts.Molecules))
	seen := make(map[string]bool)
	for _, m := range opts.Molecules {
		m = strings.TrimSpace(m)
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		molecules = append(molecules, m)
	}
	if len(molecules) == 0 {
		molecules = []string{"Drug"}
	}

	doc := &config.Document{
		Metadata: config.MetadataDocument{
			Name:    name,
			Version: opts.Version,
		},
		Molecules: &config.MoleculesDocument{
			BlockDocument: config.BlockDocument{
				Name: "Molecules",
				Formulas: []config.FormulaDocument{{
					Name:       "StartAmount",
					Type:       config.FormulaExplicit,
					Expression: "C0 * V",
					References: map[string]string{
						"C0": "Molecule|C0",
						"V":  "Organism|Volume",
					},
				}},
			},
		},
	}

	for _, m := range molecules {
		doc.Molecules.Molecules = append(doc.Molecules.Molecules, config.MoleculeDocument{
			Name:         m,
			StartFormula: "StartAmount",
		})
	}

	if opts.WithEvents {
		doc.EventGroups = &config.EventGroupsDocument{
			BlockDocument: config.BlockDocument{Name: "Events"},
			Groups: []config.NodeDocument{{
				Name: "Dosing",
				Children: []config.NodeDocument{{
					Kind:     config.KindApplication,
					Name:     molecules[0] + " dose",
					Molecule: molecules[0],
				}},
			}},
		}
	}

	return doc, nil
}

// writeScaffold writes doc to path, refusing to replace an existing file
// unless force is set.
func writeScaffold(path string, doc *config.Document, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	//nolint:gosec // G304: User-controlled output file path is intentional
	file, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := config.WriteDocument(file, doc); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
