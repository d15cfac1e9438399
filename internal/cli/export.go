package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/communitycvs/bootcamp/internal/export"
	"github.com/communitycvs/bootcamp/router"
)

func newExportCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Prerender the site to a static index.html",
		Long: `Export renders the site shell in memory and writes index.html with
the prerendered markup, the stylesheet and the WebAssembly loader. Asset
URLs are prefixed with the base path.

Examples:
  # Export the home view to ./dist
  bootcampctl export

  # Export the apply view for a site served from /bootcamp/
  bootcampctl export --mode apply --base /bootcamp/ --out public`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, v)
		},
	}

	flags := cmd.Flags()
	flags.StringP("out", "o", "dist", "output directory")
	flags.String("base", export.DefaultBase, "URL path the site is served under")
	flags.String("mode", router.Home.String(), "view to prerender: home or apply")
	flags.String("title", export.DefaultTitle, "document title")
	flags.Int("year", time.Now().Year(), "year shown in the footer")
	for _, name := range []string{"out", "base", "mode", "title", "year"} {
		_ = v.BindPFlag("export."+name, flags.Lookup(name))
	}
	return cmd
}

func runExport(cmd *cobra.Command, v *viper.Viper) error {
	mode, err := router.ParseMode(v.GetString("export.mode"))
	if err != nil {
		return err
	}

	catalog, err := loadCatalog(v)
	if err != nil {
		return err
	}

	path, err := export.WriteDir(v.GetString("export.out"), export.Options{
		Catalog: catalog,
		Mode:    mode,
		Title:   v.GetString("export.title"),
		Base:    v.GetString("export.base"),
		Year:    v.GetInt("export.year"),
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
