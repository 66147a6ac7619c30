package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/growthcheck/internal/adapters/outbound/tui"
	"github.com/abdidvp/growthcheck/internal/domain"
)

func newProfileCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the saved profile",
		Long:  "The saved profile fills in gender, birth date, height and activity level so evaluations only need the current weight.",
	}
	cmd.AddCommand(newProfileSetCmd(opts))
	cmd.AddCommand(newProfileShowCmd(opts))
	cmd.AddCommand(newProfileClearCmd(opts))
	return cmd
}

func newProfileSetCmd(opts *rootOptions) *cobra.Command {
	var (
		name, gender, birth, activity string
		height                        float64
	)

	cmd := &cobra.Command{
		Use:     "set",
		Short:   "Save or update the profile",
		Example: "  growthcheck profile set --name Sara --gender female --birth 1394/01/01 --height 140 --activity light",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp()
			if err != nil {
				return err
			}
			defer a.close()

			// Start from the existing profile so single fields can be updated.
			var p domain.Profile
			existing, err := a.profiles.Load(a.dataDir)
			switch {
			case err == nil:
				p = *existing
			case !errors.Is(err, domain.ErrProfileNotFound):
				return err
			}

			if cmd.Flags().Changed("name") {
				p.Name = name
			}
			if gender != "" {
				if p.Gender, err = domain.ParseGender(gender); err != nil {
					return err
				}
			}
			if birth != "" {
				if p.BirthDate, err = domain.ParseDate(birth); err != nil {
					return err
				}
			}
			if activity != "" {
				if p.ActivityLevel, err = domain.ParseActivityLevel(activity); err != nil {
					return err
				}
			}
			if height != 0 {
				p.HeightCm = height
			}

			saved, err := a.profiles.Save(a.dataDir, p)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderProfile(saved))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name shown on reports")
	cmd.Flags().StringVar(&gender, "gender", "", "Gender (male, female)")
	cmd.Flags().StringVar(&birth, "birth", "", "Jalali birth date (YYYY/MM/DD)")
	cmd.Flags().Float64Var(&height, "height", 0, "Height in cm")
	cmd.Flags().StringVar(&activity, "activity", "", "Activity level (sedentary, light, moderate, active, very_active)")

	return cmd
}

func newProfileShowCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the saved profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp()
			if err != nil {
				return err
			}
			defer a.close()

			p, err := a.profiles.Load(a.dataDir)
			if err != nil {
				return err
			}
			if jsonOutput {
				return renderJSON(cmd, p)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderProfile(p))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output profile as JSON")
	return cmd
}

func newProfileClearCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the saved profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.profiles.Delete(a.dataDir); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile deleted")
			return nil
		},
	}
}
