package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/communitycvs/bootcamp/internal/content"
)

func newValidateCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [catalog.yaml]",
		Short: "Check a content catalog",
		Long: `Validate decodes a catalog and reports every problem in it: unknown
keys, empty or duplicate module titles and names, and ratings outside 0..5.
With no argument the --content setting is checked, or the embedded catalog.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				catalog *content.Catalog
				err     error
			)
			if len(args) == 1 {
				catalog, err = content.LoadFile(args[0])
			} else {
				catalog, err = loadCatalog(v)
			}
			if err != nil {
				zap.L().Error("catalog is invalid", zap.Error(err))
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "catalog OK: %d modules, %d instructors, %d testimonials\n",
				len(catalog.Modules), len(catalog.Instructors), len(catalog.Testimonials))
			return nil
		},
	}
}
