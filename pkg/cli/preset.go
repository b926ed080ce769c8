package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/crewstudio/crewcanvas/pkg/storage"
)

// NewPresetCommand creates the preset command group
func NewPresetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage saved chrome presets",
		Long: `Save, inspect, and delete named chrome configurations so layout
decisions can be replayed against known panel setups.`,
	}

	cmd.AddCommand(newPresetSaveCommand())
	cmd.AddCommand(newPresetShowCommand())
	cmd.AddCommand(newPresetListCommand())
	cmd.AddCommand(newPresetDeleteCommand())

	return cmd
}

// openPresetRepository opens the preset store in the config directory.
func openPresetRepository() (*storage.SQLitePresetRepository, error) {
	return storage.NewSQLitePresetRepositoryWithPath(GetDatabasePath())
}

func newPresetSaveCommand() *cobra.Command {
	var chromePath string

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save a chrome configuration under a name",
		Long: `Save a chrome state YAML file as a named preset.

Examples:
  crewcanvas preset save split-view --chrome chrome.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			chrome, err := loadChromeFile(chromePath)
			if err != nil {
				return err
			}

			repo, err := openPresetRepository()
			if err != nil {
				return err
			}
			defer func() { _ = repo.Close() }()

			if err := repo.Save(name, *chrome); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Saved preset %q\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&chromePath, "chrome", "", "Chrome state YAML file (required)")
	_ = cmd.MarkFlagRequired("chrome")

	return cmd
}

func newPresetShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print a preset's chrome state as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openPresetRepository()
			if err != nil {
				return err
			}
			defer func() { _ = repo.Close() }()

			preset, err := repo.Get(args[0])
			if err != nil {
				return err
			}

			out, err := yaml.Marshal(preset.Chrome)
			if err != nil {
				return fmt.Errorf("failed to encode chrome state: %w", err)
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

func newPresetListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openPresetRepository()
			if err != nil {
				return err
			}
			defer func() { _ = repo.Close() }()

			presets, err := repo.List()
			if err != nil {
				return err
			}

			if len(presets) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No presets saved")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "NAME\tSCREEN\tUPDATED")
			for _, p := range presets {
				_, _ = fmt.Fprintf(w, "%s\t%.0fx%.0f\t%s\n",
					p.Name,
					p.Chrome.ScreenWidth, p.Chrome.ScreenHeight,
					p.UpdatedAt.Local().Format(time.DateTime))
			}
			return w.Flush()
		},
	}
}

func newPresetDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openPresetRepository()
			if err != nil {
				return err
			}
			defer func() { _ = repo.Close() }()

			if err := repo.Delete(args[0]); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted preset %q\n", args[0])
			return nil
		},
	}
}
