package client

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-store-keeper/models"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func (a *App) ordersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Manage orders (create requires a token)",
	}

	cmd.AddCommand(
		a.listOrdersCommand(),
		a.getOrderCommand(),
		a.createOrderCommand(),
		a.updateOrderCommand(),
		a.deleteOrderCommand(),
	)

	return cmd
}

func (a *App) listOrdersCommand() *cobra.Command {
	var page models.Pagination

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, meta, err := a.api.ListOrders(cmd.Context(), page)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), models.ListEnvelope{Data: orders, Meta: meta})
		},
	}
	paginationFlags(cmd, &page)

	return cmd
}

func (a *App) getOrderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one order with its customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := a.api.GetOrder(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), order)
		},
	}
}

func (a *App) createOrderCommand() *cobra.Command {
	var (
		customer, number, status, items string
		total                           float64
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			customerID, err := uuid.Parse(customer)
			if err != nil {
				return fmt.Errorf("invalid customer id: %w", err)
			}

			input := models.OrderInput{
				Customer:    customerID,
				OrderNumber: number,
				TotalAmount: &total,
				Status:      models.OrderStatus(status),
			}
			if items != "" {
				if err = json.Unmarshal([]byte(items), &input.Items); err != nil {
					return fmt.Errorf("invalid items: %w", err)
				}
			}

			created, err := a.api.CreateOrder(cmd.Context(), input)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), created)
		},
	}
	cmd.Flags().StringVar(&customer, "customer", "", "customer id")
	cmd.Flags().StringVar(&number, "number", "", "order number")
	cmd.Flags().Float64Var(&total, "total", 0, "total amount")
	cmd.Flags().StringVar(&status, "status", "", "Pending, Completed or Cancelled (default Pending)")
	cmd.Flags().StringVar(&items, "items", "", `items as JSON, e.g. '[{"name":"pen","quantity":2,"price":1.5}]'`)
	_ = cmd.MarkFlagRequired("customer")
	_ = cmd.MarkFlagRequired("number")
	_ = cmd.MarkFlagRequired("total")

	return cmd
}

func (a *App) updateOrderCommand() *cobra.Command {
	var (
		number, status string
		total          float64
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update fields of an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var update models.OrderUpdate
			flags := cmd.Flags()
			if flags.Changed("number") {
				update.OrderNumber = &number
			}
			if flags.Changed("status") {
				s := models.OrderStatus(status)
				update.Status = &s
			}
			if flags.Changed("total") {
				update.TotalAmount = &total
			}

			updated, err := a.api.UpdateOrder(cmd.Context(), args[0], update)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), updated)
		},
	}
	cmd.Flags().StringVar(&number, "number", "", "new order number")
	cmd.Flags().StringVar(&status, "status", "", "new status")
	cmd.Flags().Float64Var(&total, "total", 0, "new total amount")

	return cmd
}

func (a *App) deleteOrderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.api.DeleteOrder(cmd.Context(), args[0]); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), models.MessageEnvelope{Message: "Order deleted successfully"})
		},
	}
}
