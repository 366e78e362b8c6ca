package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/de-tools/destiny-report/pkg/runtime/terminal/commands"
	"github.com/de-tools/destiny-report/pkg/runtime/terminal/export"
	"github.com/de-tools/destiny-report/pkg/services/config"
	"github.com/de-tools/destiny-report/pkg/services/report"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	env      *commands.Env
	reporter *export.Reporter
	lookup   *Reporter
	logs     io.Writer
	rootCmd  *cobra.Command

	configPath   string
	profile      string
	profilesPath string
	verbose      bool
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
	// Logs receives diagnostics; defaults to stderr.
	Logs      io.Writer
	Fs        afero.Fs
	NewClient func(cfg report.Config) (report.Client, error)
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Logs == nil {
		opts.Logs = os.Stderr
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.NewClient == nil {
		opts.NewClient = report.NewClient
	}

	cli := &CLI{
		env:      &commands.Env{Fs: opts.Fs, NewClient: opts.NewClient},
		reporter: export.NewReporter(opts.Output),
		lookup:   NewReporter(opts.Output),
		logs:     opts.Logs,
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// SetArgs replaces os.Args for the next Execute.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "destiny",
		Short:             "Destiny report preparation tool",
		SilenceUsage:      true,
		PersistentPreRunE: cli.setup,
	}

	cmd.PersistentFlags().StringVarP(&cli.configPath, "config", "c", "",
		"Path to destiny.yaml (default is ./destiny.yaml when present)")
	cmd.PersistentFlags().StringVar(&cli.profile, "profile", "",
		"Report service profile to use")
	cmd.PersistentFlags().StringVar(&cli.profilesPath, "profiles", config.DefaultProfilePath(),
		"Path to the profile file")
	cmd.PersistentFlags().BoolVarP(&cli.verbose, "verbose", "v", false, "Log derivation details")

	cmd.AddCommand(commands.NewPreviewCmd(cli.env, cli.reporter))
	cmd.AddCommand(commands.NewExportCmd(cli.env))
	cmd.AddCommand(commands.NewHealthCmd(cli.env))
	cmd.AddCommand(commands.NewExtractCmd(cli.env))
	cmd.AddCommand(commands.NewLookupCmd(cli.lookup))

	return cmd
}

func (cli *CLI) setup(cmd *cobra.Command, _ []string) error {
	level := zerolog.WarnLevel
	if cli.verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cli.logs}).Level(level).With().Timestamp().Logger()
	cmd.SetContext(logger.WithContext(cmd.Context()))

	cfg, err := config.Load(cli.configPath)
	if err != nil {
		return err
	}
	if cli.profile != "" {
		registry, err := config.NewRegistry(cli.profilesPath)
		if err != nil {
			return err
		}
		p, err := registry.GetProfile(cmd.Context(), cli.profile)
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		cfg.ApplyProfile(p)
		logger.Debug().Str("profile", p.Name).Str("url", cfg.API.BaseURL).Msg("profile applied")
	}
	cli.env.Config = cfg
	return nil
}
