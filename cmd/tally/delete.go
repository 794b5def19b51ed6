package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/common"
)

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <transaction-id>",
		Short: "Delete a transaction",
		Long: `Delete one transaction by id (shown by 'tally list').

Entries are immutable; deleting and re-adding is the only way to fix a
mistake. There is no undo.`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}
}

func runDelete(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return common.NewUserError(
			fmt.Sprintf("%q is not a transaction id", args[0]), common.ErrInvalidConfig)
	}

	svc, err := openService()
	if err != nil {
		return err
	}
	if err := svc.DeleteTransaction(id); err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted transaction %d", id)))
	return nil
}
