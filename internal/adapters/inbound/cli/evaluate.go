package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abdidvp/growthcheck/internal/adapters/outbound/tui"
	"github.com/abdidvp/growthcheck/internal/application"
	"github.com/abdidvp/growthcheck/internal/domain/jalali"
)

func newEvaluateCmd(opts *rootOptions) *cobra.Command {
	var (
		overrides  application.InputOverrides
		weight     float64
		waist      float64
		name       string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate BMI, growth Z-score and calorie needs",
		Long: "Evaluate BMI, the WHO BMI-for-age Z-score (ages 5-19) or adult category, the healthy weight range, BMR, TDEE and calorie targets.\n\n" +
			"Flags left out are taken from the saved profile (see `growthcheck profile set`). The result is added to the history.",
		Example: "  growthcheck evaluate --gender female --birth 1394/01/01 --height 140 --weight 32 --activity moderate\n" +
			"  growthcheck evaluate --weight 71.5",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp()
			if err != nil {
				return err
			}
			defer a.close()

			in, p, err := a.profiles.BaseInput(a.dataDir, weight, waist, jalali.FromTime(time.Now()))
			if err != nil {
				return err
			}
			if err := overrides.Apply(&in); err != nil {
				return err
			}

			ev, err := a.evaluate.Evaluate(a.dataDir, in)
			if err != nil {
				return fmt.Errorf("evaluation failed: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, ev)
			}
			if name == "" && p != nil {
				name = p.Name
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderEvaluation(ev, name))
			return nil
		},
	}

	cmd.Flags().Float64Var(&weight, "weight", 0, "Body weight in kg (required)")
	cmd.Flags().Float64Var(&overrides.HeightCm, "height", 0, "Height in cm")
	cmd.Flags().StringVar(&overrides.Gender, "gender", "", "Gender (male, female)")
	cmd.Flags().StringVar(&overrides.BirthDate, "birth", "", "Jalali birth date (YYYY/MM/DD)")
	cmd.Flags().StringVar(&overrides.ActivityLevel, "activity", "", "Activity level (sedentary, light, moderate, active, very_active)")
	cmd.Flags().StringVar(&overrides.ReferenceDate, "date", "", "Jalali evaluation date (default: today)")
	cmd.Flags().Float64Var(&waist, "waist", 0, "Waist circumference in cm (optional)")
	cmd.Flags().StringVar(&name, "name", "", "Name shown on the report")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output evaluation as JSON")
	_ = cmd.MarkFlagRequired("weight")

	return cmd
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
