// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/resume-intake/internal/scaffold"
	"github.com/pdiddy/resume-intake/pkg/types"
)

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Generate a boilerplate test file for a module and layer",
	Long: `Scaffold stamps out an async pytest boilerplate file for a module at
one of three architectural layers: dao, service, or router. The module name
fills the template's class and table-name slots (module "invoice" yields
InvoiceDAO over table invoice).

If the target file exists, scaffold asks before overwriting; declining
aborts without touching the file. Custom layer templates can be supplied
as a YAML file via --templates or scaffold.templates_file in config.`,
	RunE: runScaffold,
}

func init() {
	scaffoldCmd.Flags().String("module", "", "module name (e.g. user, publication, deadline)")
	scaffoldCmd.Flags().String("layer", "", "layer to test: dao, service, or router")
	scaffoldCmd.Flags().String("output", "tests", "output directory for the generated test file")
	scaffoldCmd.Flags().String("templates", "", "YAML file with custom layer templates")
	scaffoldCmd.Flags().Bool("yes", false, "overwrite existing files without prompting")
	scaffoldCmd.MarkFlagRequired("module")
	scaffoldCmd.MarkFlagRequired("layer")

	rootCmd.AddCommand(scaffoldCmd)
}

func runScaffold(cmd *cobra.Command, args []string) error {
	module, _ := cmd.Flags().GetString("module")
	layer, _ := cmd.Flags().GetString("layer")
	assumeYes, _ := cmd.Flags().GetBool("yes")

	cfg := scaffoldConfig(cmd)

	var templates map[string]string
	if cfg.TemplatesFile != "" {
		loaded, err := scaffold.LoadTemplates(cfg.TemplatesFile)
		if err != nil {
			return err
		}
		templates = loaded
	}

	req := types.ScaffoldRequest{
		Module:    module,
		Layer:     layer,
		OutputDir: cfg.OutputDir,
		Templates: templates,
		AssumeYes: assumeYes,
	}

	_, err := scaffold.Generate(req, os.Stdin, os.Stdout)
	return err
}

// scaffoldConfig resolves the scaffold stage settings, flags winning over
// config file values.
func scaffoldConfig(cmd *cobra.Command) types.ScaffoldConfig {
	return types.ScaffoldConfig{
		OutputDir:     stringSetting(cmd, "output", "scaffold.output_dir"),
		TemplatesFile: stringSetting(cmd, "templates", "scaffold.templates_file"),
	}
}
