package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abdidvp/growthcheck/internal/adapters/outbound/config"
	"github.com/abdidvp/growthcheck/internal/adapters/outbound/history"
	"github.com/abdidvp/growthcheck/internal/adapters/outbound/profile"
	"github.com/abdidvp/growthcheck/internal/adapters/outbound/reference"
	"github.com/abdidvp/growthcheck/internal/application"
)

var (
	version = "dev"
	commit  = "none"
)

// rootOptions holds the persistent flags shared by every sub-command.
type rootOptions struct {
	dataDir string
	verbose bool
}

// app is the wiring one command invocation works with.
type app struct {
	dataDir    string
	logger     *zap.Logger
	configs    *config.YAMLLoader
	references *reference.Loader
	evaluate   *application.EvaluateService
	profiles   *application.ProfileService
}

func (o *rootOptions) newApp() (*app, error) {
	dataDir, err := resolveDataDir(o.dataDir)
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(o.verbose)
	if err != nil {
		return nil, err
	}
	logger.Debug("Using data directory", zap.String("data_dir", dataDir))

	configs := config.New()
	references := reference.New()
	return &app{
		dataDir:    dataDir,
		logger:     logger,
		configs:    configs,
		references: references,
		evaluate:   application.NewEvaluateService(configs, references, history.New(), logger),
		profiles:   application.NewProfileService(profile.New()),
	}, nil
}

func (a *app) close() {
	_ = a.logger.Sync()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "growthcheck",
		Short:         "BMI, growth and calorie assessment with Jalali dates",
		Long:          "growthcheck evaluates BMI against WHO BMI-for-age references (ages 5-19) or adult thresholds, and estimates BMR, TDEE and calorie targets. Dates are Jalali (YYYY/MM/DD).",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "Directory for profile, history and config (default $"+dataDirEnv+" or ~/.growthcheck)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newEvaluateCmd(opts))
	cmd.AddCommand(newHistoryCmd(opts))
	cmd.AddCommand(newProfileCmd(opts))
	cmd.AddCommand(newCalendarCmd())
	cmd.AddCommand(newInitCmd(opts))
	cmd.AddCommand(newMCPCmd(opts))
	cmd.AddCommand(newServeCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
