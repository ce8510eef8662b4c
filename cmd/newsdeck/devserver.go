package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/glabrego/newsdeck/internal/mockapi"
)

var (
	flagAddr     string
	flagPages    int
	flagPageSize int
)

var devserverCmd = &cobra.Command{
	Use:   "devserver",
	Short: "Serve a local fixture news API",
	Long: `Run a local HTTP server with deterministic fixture data for the three news
endpoints. Point NEWSDECK_API_URL at it to use newsdeck without the real API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fixtures := mockapi.DefaultFixtures()
		if flagPages < 0 || flagPageSize <= 0 {
			return fmt.Errorf("invalid fixture size: pages=%d page-size=%d", flagPages, flagPageSize)
		}
		fixtures.Pages = flagPages
		fixtures.PageSize = flagPageSize

		if flagDebug {
			log.SetLevel(log.DebugLevel)
		} else {
			gin.SetMode(gin.ReleaseMode)
		}

		router := mockapi.NewRouter(fixtures)
		log.WithFields(log.Fields{
			"addr":      flagAddr,
			"pages":     fixtures.Pages,
			"page_size": fixtures.PageSize,
		}).Info("Starting fixture news API")
		return router.Run(flagAddr)
	},
}

func init() {
	defaults := mockapi.DefaultFixtures()
	devserverCmd.Flags().StringVar(&flagAddr, "addr", ":8080", "listen address")
	devserverCmd.Flags().IntVar(&flagPages, "pages", defaults.Pages, "number of non-empty pages per feed")
	devserverCmd.Flags().IntVar(&flagPageSize, "page-size", defaults.PageSize, "items per page")
}
