package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"storefront/internal/gateway/rest/orders_api"
	"storefront/internal/generated/dto"
	"storefront/internal/pkg/grpchealth"
	"storefront/pkg/logger/zap_adapter"
)

var errArgs = errors.New("wrong number of arguments")

var getCmd = &cli.Command{
	Name:      "get",
	Usage:     "Show an order",
	ArgsUsage: "<order-id>",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		args, err := requireArgs(cmd, 1)
		if err != nil {
			return err
		}

		ctx, cancel := withTimeout(ctx, cmd)
		defer cancel()

		order, err := newGateway(cmd).GetOrder(ctx, args[0])
		if err != nil {
			return err
		}

		renderOrder(cmd.Root().Writer, *order)
		return nil
	},
}

var listCmd = &cli.Command{
	Name:  "list",
	Usage: "List orders, newest first",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "status", Usage: "filter by order status"},
		&cli.StringFlag{Name: "payment-status", Usage: "filter by payment status"},
		&cli.StringFlag{Name: "user", Usage: "filter by customer id"},
		&cli.IntFlag{Name: "limit", Usage: "page size", Value: 50},
		&cli.IntFlag{Name: "offset", Usage: "page offset"},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		params := dto.ListOrdersParams{}
		if v := cmd.String("status"); v != "" {
			status := dto.OrderStatus(v)
			params.Status = &status
		}
		if v := cmd.String("payment-status"); v != "" {
			paymentStatus := dto.PaymentStatus(v)
			params.PaymentStatus = &paymentStatus
		}
		if v := cmd.String("user"); v != "" {
			params.User = &v
		}
		limit := cmd.Int("limit")
		params.Limit = &limit
		if offset := cmd.Int("offset"); offset > 0 {
			params.Offset = &offset
		}

		ctx, cancel := withTimeout(ctx, cmd)
		defer cancel()

		orders, err := newGateway(cmd).ListOrders(ctx, params)
		if err != nil {
			return err
		}

		renderOrders(cmd.Root().Writer, orders)
		return nil
	},
}

var actionsCmd = &cli.Command{
	Name:      "actions",
	Usage:     "Show the status changes the order accepts now",
	ArgsUsage: "<order-id>",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		args, err := requireArgs(cmd, 1)
		if err != nil {
			return err
		}

		ctx, cancel := withTimeout(ctx, cmd)
		defer cancel()

		actions, err := newGateway(cmd).GetOrderActions(ctx, args[0])
		if err != nil {
			return err
		}

		renderActions(cmd.Root().Writer, *actions)
		return nil
	},
}

var statusCmd = &cli.Command{
	Name:      "status",
	Usage:     "Move the order to a new status",
	ArgsUsage: "<order-id> <status>",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		args, err := requireArgs(cmd, 2)
		if err != nil {
			return err
		}

		ctx, cancel := withTimeout(ctx, cmd)
		defer cancel()

		transition, err := newGateway(cmd).UpdateOrderStatus(ctx, args[0], args[1])
		if err != nil {
			return err
		}

		renderTransition(cmd.Root().Writer, "status",
			string(transition.PreviousStatus), string(transition.Order.Status))
		return nil
	},
}

var paymentCmd = &cli.Command{
	Name:      "payment",
	Usage:     "Move the order to a new payment status",
	ArgsUsage: "<order-id> <payment-status>",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		args, err := requireArgs(cmd, 2)
		if err != nil {
			return err
		}

		ctx, cancel := withTimeout(ctx, cmd)
		defer cancel()

		transition, err := newGateway(cmd).UpdateOrderPaymentStatus(ctx, args[0], args[1])
		if err != nil {
			return err
		}

		renderTransition(cmd.Root().Writer, "payment",
			string(transition.PreviousPaymentStatus), string(transition.Order.PaymentStatus))
		return nil
	},
}

var createCmd = &cli.Command{
	Name:  "create",
	Usage: "Create an order",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "user", Usage: "customer id", Required: true},
		&cli.StringFlag{Name: "payment-method", Usage: "delivery or gateway", Value: "delivery"},
		&cli.StringFlag{Name: "price", Usage: "items price", Required: true},
		&cli.StringFlag{Name: "total-price", Usage: "price with delivery and taxes", Required: true},
		&cli.StringFlag{Name: "street", Usage: "delivery street", Required: true},
		&cli.StringFlag{Name: "city", Usage: "delivery city", Required: true},
		&cli.StringFlag{Name: "state", Usage: "delivery state", Required: true},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		userID := cmd.String("user")
		paymentMethod := cmd.String("payment-method")
		price := cmd.String("price")
		totalPrice := cmd.String("total-price")

		req := dto.OrderCreate{
			User:          &userID,
			PaymentMethod: &paymentMethod,
			Price:         &price,
			TotalPrice:    &totalPrice,
			DeliveryAddress: &dto.DeliveryAddress{
				Street: cmd.String("street"),
				City:   cmd.String("city"),
				State:  cmd.String("state"),
			},
		}

		ctx, cancel := withTimeout(ctx, cmd)
		defer cancel()

		order, err := newGateway(cmd).CreateOrder(ctx, req)
		if err != nil {
			return err
		}

		renderOrder(cmd.Root().Writer, *order)
		return nil
	},
}

var healthCmd = &cli.Command{
	Name:  "health",
	Usage: "Query the gRPC health endpoint of the service",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "grpc-addr",
			Usage:   "gRPC health address (host:port)",
			Sources: cli.EnvVars("ORDERCTL_GRPC_ADDR"),
			Value:   "localhost:50051",
		},
		&cli.StringFlag{
			Name:  "service",
			Usage: "service name, empty for overall status",
			Value: grpchealth.ServiceName,
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		conn, err := grpchealth.NewConnClient(cmd.String("grpc-addr"))
		if err != nil {
			return err
		}
		defer func() {
			_ = conn.Close()
		}()

		ctx, cancel := withTimeout(ctx, cmd)
		defer cancel()

		log := zap_adapter.NewFromZap(zap.NewNop())
		status, err := grpchealth.Check(ctx, log, conn, cmd.String("service"))
		if err != nil {
			return err
		}

		renderHealth(cmd.Root().Writer, cmd.String("service"), status.String())
		return nil
	},
}

func newGateway(cmd *cli.Command) *orders_api.Gateway {
	return orders_api.New(cmd.String("addr"), &http.Client{})
}

func withTimeout(ctx context.Context, cmd *cli.Command) (context.Context, context.CancelFunc) {
	if timeout := cmd.Duration("timeout"); timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}
	return context.WithCancel(ctx)
}

func requireArgs(cmd *cli.Command, n int) ([]string, error) {
	if cmd.Args().Len() != n {
		return nil, fmt.Errorf("%w: usage: %s %s", errArgs, cmd.FullName(), cmd.ArgsUsage)
	}
	return cmd.Args().Slice(), nil
}
