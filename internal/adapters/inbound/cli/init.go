package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abdidvp/growthcheck/internal/adapters/outbound/config"
	"github.com/abdidvp/growthcheck/internal/domain"
)

func newInitCmd(opts *rootOptions) *cobra.Command {
	var (
		cfg   = domain.DefaultConfig()
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .growthcheck.yaml configuration file",
		Long:  "Create .growthcheck.yaml in the data directory with the calorie offsets, history size and optional WHO reference files.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp()
			if err != nil {
				return err
			}
			defer a.close()

			dest := filepath.Join(a.dataDir, config.FileName)
			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", dest)
				}
			}

			if err := a.configs.Write(a.dataDir, cfg); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}
			// Fail now rather than on the first evaluation if a reference file is unusable.
			if _, err := a.references.Load(a.dataDir, cfg.Reference); err != nil {
				return fmt.Errorf("config written to %s but the growth reference does not load: %w", dest, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", dest)
			return nil
		},
	}

	cmd.Flags().Float64Var(&cfg.Calories.Surplus, "surplus", cfg.Calories.Surplus, "kcal added to TDEE for weight gain")
	cmd.Flags().Float64Var(&cfg.Calories.Deficit, "deficit", cfg.Calories.Deficit, "kcal removed from TDEE for weight loss")
	cmd.Flags().IntVar(&cfg.History.Limit, "history-limit", cfg.History.Limit, "Number of evaluations kept in the history")
	cmd.Flags().StringVar(&cfg.Reference.Boys, "boys-reference", "", "WHO bmi-boys-z-who-2007-exp.txt file")
	cmd.Flags().StringVar(&cfg.Reference.Girls, "girls-reference", "", "WHO bmi-girls-z-who-2007-exp.txt file")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing .growthcheck.yaml")

	return cmd
}
