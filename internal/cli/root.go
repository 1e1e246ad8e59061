package cli

import (
	"github.com/spf13/cobra"

	"bridgecrew/internal/agent"
	"bridgecrew/internal/config"
	"bridgecrew/internal/deliberation"
	"bridgecrew/internal/shiplog"
)

// App carries the services constructed once at process start. No package
// singletons: everything request handling touches is passed by handle.
type App struct {
	Settings config.Settings
	Service  *deliberation.Service
	Store    *shiplog.Store
	Gateway  *agent.Gateway
}

func Execute(app App) error {
	return newRootCmd(app).Execute()
}

func newRootCmd(app App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bridgecrew",
		Short: "Crew deliberation backend for a simulated vessel",
		Long: "Bridgecrew consults a fixed sequence of role-specialized reasoning agents" +
			" about the vessel's situation and returns a final directive with a labeled" +
			" reasoning trail, recording everything into a bounded ship log.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(app)
		},
	}
	rootCmd.AddCommand(newServeCmd(app), newConsoleCmd(app))
	return rootCmd
}
