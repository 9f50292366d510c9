package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"AccountSystem/internal/config"
	"AccountSystem/internal/service"
)

// CmdParams holds all dependencies needed by command handlers. Config, Logger
// and Service are filled in by the root command before any subcommand runs.
type CmdParams struct {
	Viper   *viper.Viper
	Config  *config.Config
	Logger  *zap.Logger
	Service service.AccountService
	Palette []*cobra.Command
	Use     string
	Alias   string
	Short   string
	Long    string
}
