package commands

import (
	"descstat/internal/config"
	"descstat/internal/logging"
	"descstat/internal/mcp"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "descstat",
	Short: "Descstat is a descriptive statistics MCP server and CLI",
	Long: `Descstat computes descriptive statistics (mean, median, mode) for numeric
datasets. Run without arguments it serves the statistics as MCP tools over
Stdio; the 'describe' subcommand computes them once and prints the result.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		// Load configuration
		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("descstat starting")
	},
	Run: func(cmd *cobra.Command, args []string) {
		log.Info().Msg("MCP Server starting Stdio loop")
		server := mcp.NewServer()
		if err := server.Serve(); err != nil {
			log.Fatal().Err(err).Msg("MCP Server loop failed")
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.AddCommand(describeCmd)
}
