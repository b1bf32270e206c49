package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/amirphl/futures-trader/internal/config"
	"github.com/amirphl/futures-trader/internal/exchange"
	"github.com/amirphl/futures-trader/internal/journal"
	"github.com/amirphl/futures-trader/internal/notifier"
	"github.com/amirphl/futures-trader/internal/order"
)

func init() {
	orderCmd.Flags().String("symbol", "", "trading symbol (e.g., BTCUSDT)")
	orderCmd.Flags().String("side", "", "order side: BUY or SELL")
	orderCmd.Flags().String("type", "", "order type: MARKET, LIMIT or STOP_LIMIT")
	orderCmd.Flags().String("quantity", "", "order quantity")
	orderCmd.Flags().String("price", "", "limit price (required for LIMIT and STOP_LIMIT)")
	orderCmd.Flags().String("stop-price", "", "stop price (required for STOP_LIMIT)")
	orderCmd.Flags().Bool("dry-run", false, "fill the order locally instead of submitting it")
	rootCmd.AddCommand(orderCmd)
}

// go run ./cmd order --symbol=BTCUSDT --side=buy --type=limit --quantity=0.01 --price=30000
var orderCmd = &cobra.Command{
	Use:          "order",
	Short:        "Place a new order",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		symbol, _ := cmd.Flags().GetString("symbol")
		side, _ := cmd.Flags().GetString("side")
		typ, _ := cmd.Flags().GetString("type")
		quantity, _ := cmd.Flags().GetString("quantity")
		price, _ := cmd.Flags().GetString("price")
		stopPrice, _ := cmd.Flags().GetString("stop-price")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		// Validation happens before any credential or network work.
		spec, err := order.Build(symbol, side, typ, quantity, price, stopPrice)
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ex, err := newExchange(cfg, dryRun)
		if err != nil {
			return err
		}

		jr := journal.New()
		n := newNotifier(cfg)

		result, err := ex.SubmitOrder(ctx, spec)
		if err != nil {
			jr.Record(journal.Event{
				Type:        "order",
				Description: "order_rejected",
				Data: map[string]any{
					"symbol": spec.Symbol,
					"side":   spec.Side,
					"type":   spec.Type,
					"error":  err.Error(),
				},
			})
			n.SendWithRetry(fmt.Sprintf("Order rejected: %s %s %s %s: %v",
				spec.Side, spec.Quantity, spec.Symbol, spec.Type, err))
			return err
		}

		jr.Record(journal.Event{
			Type:        "order",
			Description: "order_placed",
			Data: map[string]any{
				"order_id":        result.OrderID,
				"client_order_id": result.ClientOrderID,
				"symbol":          result.Symbol,
				"status":          result.Status,
			},
		})
		n.SendWithRetry(fmt.Sprintf("Order placed: %s %s %s %s (id %d, status %s)",
			result.Side, result.OrigQuantity, result.Symbol, result.Type, result.OrderID, result.Status))

		printResult(result)
		return nil
	},
}

func newExchange(cfg config.Config, dryRun bool) (exchange.Exchange, error) {
	if dryRun {
		return exchange.NewMockFutures(), nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return exchange.NewBinanceFutures(cfg.APIKey, cfg.APISecret, viper.GetBool("testnet")), nil
}

func newNotifier(cfg config.Config) notifier.Notifier {
	if cfg.TelegramToken == "" || cfg.TelegramChatID == "" {
		return notifier.Nop{}
	}
	return notifier.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID, cfg.NotificationRetries, cfg.NotificationDelay)
}

func printResult(r order.Result) {
	fmt.Printf("order id:        %d\n", r.OrderID)
	fmt.Printf("client order id: %s\n", r.ClientOrderID)
	fmt.Printf("symbol:          %s\n", r.Symbol)
	fmt.Printf("side:            %s\n", r.Side)
	fmt.Printf("type:            %s\n", r.Type)
	fmt.Printf("status:          %s\n", r.Status)
	fmt.Printf("price:           %s\n", r.Price)
	fmt.Printf("quantity:        %s\n", r.OrigQuantity)
	fmt.Printf("executed:        %s\n", r.ExecutedQty)
	if r.AvgPrice != "" {
		fmt.Printf("avg price:       %s\n", r.AvgPrice)
	}
}
