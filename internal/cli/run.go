package cli

import (
	"bufio"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/orderpad/orderpad/internal/api"
	"github.com/orderpad/orderpad/internal/config"
	"github.com/orderpad/orderpad/internal/controller"
	"github.com/orderpad/orderpad/internal/order"
	"github.com/orderpad/orderpad/internal/tui"
	"github.com/orderpad/orderpad/pkg/logger"
)

const helpText = `Commands:
  add <product-id> <quantity>   add a line item to the order
  save                          submit the order
  show                          redraw the order table and total
  products                      re-fetch and redraw the product selector
  help                          show this help
  quit                          leave`

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the interactive order-entry widget",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}

			log := logger.New(cfg.LogLevel)
			slog.SetDefault(log)

			client := api.New(
				cfg.API.BaseURL,
				cfg.API.ProductsPath,
				cfg.API.SavePath,
				time.Duration(cfg.API.Timeout)*time.Second,
				log,
			)

			state := order.NewState()
			term := tui.NewTerminal(cmd.OutOrStdout())
			ctrl := controller.New(client, client, state, term, term, log)

			return runLoop(cmd, ctrl, term)
		},
	}
}

// runLoop is the host surface of the widget: it stands in for the page's
// buttons and fields, translating typed commands into controller events.
func runLoop(cmd *cobra.Command, ctrl *controller.Controller, term *tui.Terminal) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	ctrl.Start(ctx)
	fmt.Fprintln(out, helpText)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "add":
			if len(fields) != 3 {
				term.NotifyError("usage: add <product-id> <quantity>")
				continue
			}
			ctrl.Add(ctx, fields[1], fields[2])
		case "save":
			ctrl.Save(ctx)
		case "show":
			ctrl.Refresh(ctx)
		case "products":
			ctrl.Start(ctx)
		case "help":
			fmt.Fprintln(out, helpText)
		case "quit", "exit":
			return nil
		default:
			term.NotifyError("unknown command: " + fields[0])
		}
	}
	return scanner.Err()
}
