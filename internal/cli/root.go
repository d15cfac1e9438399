// Package cli implements bootcampctl, the build tooling for the site:
// static export and content validation.
package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/communitycvs/bootcamp/internal/content"
	"github.com/communitycvs/bootcamp/internal/logging"
)

const envPrefix = "BOOTCAMP"

// Execute runs bootcampctl with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree around a fresh viper instance.
// Settings resolve flag, then BOOTCAMP_* environment, then bootcamp.yaml.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	var restoreLogger func()

	root := &cobra.Command{
		Use:   "bootcampctl",
		Short: "Build tooling for the Creative Leadership Bootcamp site",
		Long: `bootcampctl prerenders the bootcamp site to static HTML and checks
authored content before it is published.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(v); err != nil {
				return err
			}
			logger, err := logging.New(v.GetString("log.level"), v.GetString("log.format"))
			if err != nil {
				return err
			}
			restoreLogger = logging.Install(logger)
			if used := v.ConfigFileUsed(); used != "" {
				zap.L().Debug("using config file", zap.String("path", used))
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = zap.L().Sync()
			if restoreLogger != nil {
				restoreLogger()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is ./bootcamp.yaml)")
	flags.String("content", "", "catalog YAML to use instead of the embedded one")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-format", logging.FormatConsole, "log format: console or json")
	_ = v.BindPFlag("config", flags.Lookup("config"))
	_ = v.BindPFlag("content", flags.Lookup("content"))
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = v.BindPFlag("log.format", flags.Lookup("log-format"))

	root.AddCommand(newExportCommand(v), newValidateCommand(v))
	return root
}

func initConfig(v *viper.Viper) error {
	if cfgFile := v.GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("bootcamp")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	// BOOTCAMP_EXPORT_OUT for export.out
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	return nil
}

// loadCatalog returns the catalog named by the content setting, or the
// embedded one.
func loadCatalog(v *viper.Viper) (*content.Catalog, error) {
	path := v.GetString("content")
	if path == "" {
		return content.Default(), nil
	}
	zap.L().Debug("loading catalog", zap.String("path", path))
	return content.LoadFile(path)
}
