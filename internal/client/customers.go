package client

import (
	"github.com/MKhiriev/go-store-keeper/models"
	"github.com/spf13/cobra"
)

func (a *App) customersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "Manage customers (requires a token)",
	}

	cmd.AddCommand(
		a.listCustomersCommand(),
		a.getCustomerCommand(),
		a.createCustomerCommand(),
		a.updateCustomerCommand(),
		a.deleteCustomerCommand(),
	)

	return cmd
}

func (a *App) listCustomersCommand() *cobra.Command {
	var page models.Pagination

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			customers, meta, err := a.api.ListCustomers(cmd.Context(), page)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), models.ListEnvelope{Data: customers, Meta: meta})
		},
	}
	paginationFlags(cmd, &page)

	return cmd
}

func (a *App) getCustomerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			customer, err := a.api.GetCustomer(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), customer)
		},
	}
}

func (a *App) createCustomerCommand() *cobra.Command {
	var customer models.Customer

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := a.api.CreateCustomer(cmd.Context(), customer)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), created)
		},
	}
	cmd.Flags().StringVar(&customer.Name, "name", "", "customer name")
	cmd.Flags().StringVar(&customer.Email, "email", "", "customer email")
	cmd.Flags().StringVar(&customer.Phone, "phone", "", "customer phone")
	cmd.Flags().StringVar(&customer.Address, "address", models.DefaultCustomerAddress, "customer address")

	return cmd
}

// updateCustomerCommand sends only the flags that were set.
func (a *App) updateCustomerCommand() *cobra.Command {
	var name, email, phone, address string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update fields of a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var update models.CustomerUpdate
			flags := cmd.Flags()
			if flags.Changed("name") {
				update.Name = &name
			}
			if flags.Changed("email") {
				update.Email = &email
			}
			if flags.Changed("phone") {
				update.Phone = &phone
			}
			if flags.Changed("address") {
				update.Address = &address
			}

			updated, err := a.api.UpdateCustomer(cmd.Context(), args[0], update)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), models.DataEnvelope{Data: updated})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&email, "email", "", "new email")
	cmd.Flags().StringVar(&phone, "phone", "", "new phone")
	cmd.Flags().StringVar(&address, "address", "", "new address")

	return cmd
}

func (a *App) deleteCustomerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.api.DeleteCustomer(cmd.Context(), args[0]); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), models.DataEnvelope{Data: "Customer deleted successfully"})
		},
	}
}
