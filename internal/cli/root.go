package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"AccountSystem/internal/config"
	"AccountSystem/internal/handler"
	"AccountSystem/internal/logger"
	"AccountSystem/internal/repository"
	"AccountSystem/internal/service"
)

// RootCMD wraps the root cobra.Command
type RootCMD struct {
	Root *cobra.Command
}

// NewRootCMD creates a new RootCMD with the given parameters
func NewRootCMD(params *CmdParams) *RootCMD {
	return &RootCMD{
		Root: NewRoot(params),
	}
}

// NewRoot creates the root command. Without a subcommand it runs the
// interactive menu on the command's stdin and stdout.
func NewRoot(params *CmdParams) *cobra.Command {
	if params.Viper == nil {
		params.Viper = config.New()
	}

	var cfgFile string

	rootCmd := &cobra.Command{
		Use:          params.Use,
		Short:        params.Short,
		Long:         params.Long,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, params, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			params.Logger.Info("interactive session started")
			return handler.NewConsoleHandler(params.Service, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if params.Logger != nil {
				_ = params.Logger.Sync()
			}
		},
	}
	if params.Alias != "" {
		rootCmd.Aliases = []string{params.Alias}
	}

	if params.Palette == nil {
		params.Palette = GeneratePalette(params)
	}
	rootCmd.AddCommand(params.Palette...)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./accountsys.yaml)")
	flags.String("initial-balance", "", "starting balance (default 1000.00)")
	flags.String("log-level", "", "log level: debug, info, warn or error (default warn)")
	flags.String("log-encoding", "", "log encoding: console or json (default console)")

	_ = params.Viper.BindPFlag(config.KeyInitial, flags.Lookup("initial-balance"))
	_ = params.Viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = params.Viper.BindPFlag(config.KeyLogEncoding, flags.Lookup("log-encoding"))

	return rootCmd
}

// GeneratePalette returns the subcommands of the root command.
func GeneratePalette(params *CmdParams) []*cobra.Command {
	return []*cobra.Command{
		NewApply(params),
		NewVersion(params),
	}
}

// setup loads configuration and wires the balance store, service and logger
// for this run. Each run gets a fresh store.
func setup(cmd *cobra.Command, params *CmdParams, cfgFile string) error {
	cfg, err := config.Load(params.Viper, cfgFile)
	if err != nil {
		return err
	}

	log, err := logger.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	log = log.With(zap.String("session_id", uuid.NewString()))

	initial, err := cfg.InitialBalance()
	if err != nil {
		return err
	}

	params.Config = cfg
	params.Logger = log
	params.Service = service.NewAccountService(repository.NewMemoryRepository(initial), log)

	log.Debug("configuration loaded",
		zap.String("config_file", params.Viper.ConfigFileUsed()),
		zap.Stringer("initial_balance", initial))

	return nil
}
