package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orderpad",
		Short: "Terminal order-entry client for the remote order API",
		Long: "orderpad lists products from the remote catalog, accumulates order lines\n" +
			"with a running total, and submits the finished order back to the API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newServeCmd())
	return cmd
}

func Execute() error {
	return newRootCmd().Execute()
}
