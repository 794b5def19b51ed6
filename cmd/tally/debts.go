package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/ledger"
	"github.com/tallyhq/tally/internal/model"
)

func debtsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debts",
		Short: "Track informal IOUs",
		RunE:  runDebtsList,
	}

	cmd.AddCommand(debtsAddCmd())
	cmd.AddCommand(debtsSettleCmd())
	cmd.AddCommand(debtsDeleteCmd())

	return cmd
}

func runDebtsList(_ *cobra.Command, _ []string) error {
	svc, err := openService()
	if err != nil {
		return err
	}

	doc := svc.Data()
	if len(doc.Debts) == 0 {
		fmt.Println(cli.FormatInfo("No debts recorded"))
		return nil
	}

	money := moneyFormatter(doc)
	var sb strings.Builder
	for i, d := range doc.Debts {
		if i > 0 {
			sb.WriteByte('\n')
		}
		direction := cli.ErrorStyle.Render("I owe")
		if d.Type == model.DebtOwesMe {
			direction = cli.SuccessStyle.Render("owes me")
		}
		fmt.Fprintf(&sb, "%s  %-12s %-8s %10s", d.ID, d.Person, direction, money.Format(d.Amount))
		if d.DueDate != nil {
			fmt.Fprintf(&sb, "  due %s", d.DueDate.Format("2006-01-02"))
		}
		if d.IsSettled {
			sb.WriteString("  " + cli.SubtleStyle.Render("settled"))
		}
	}

	summary := model.SummarizeDebts(doc.Debts)
	fmt.Fprintf(&sb, "\n\nI owe %s · owed to me %s · net %s",
		money.Format(summary.TotalIOwe),
		money.Format(summary.TotalOwesMe),
		money.Format(summary.Net()))

	fmt.Println(cli.RenderBox("Debts", sb.String()))
	return nil
}

func debtsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <person>",
		Short: "Record a debt",
		Args:  cobra.ExactArgs(1),
		RunE:  runDebtsAdd,
	}

	cmd.Flags().StringP("amount", "a", "", "amount (required)")
	cmd.Flags().StringP("type", "t", "i_owe", "direction (i_owe, owes_me)")
	cmd.Flags().StringP("note", "n", "", "free-form note")
	cmd.Flags().StringP("due", "d", "", "due date YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func runDebtsAdd(cmd *cobra.Command, args []string) error {
	rawAmount, _ := cmd.Flags().GetString("amount")
	dtype, _ := cmd.Flags().GetString("type")
	note, _ := cmd.Flags().GetString("note")
	rawDue, _ := cmd.Flags().GetString("due")

	amount, err := parseAmount(rawAmount)
	if err != nil {
		return err
	}

	var due *time.Time
	if rawDue != "" {
		d, err := parseDay(rawDue)
		if err != nil {
			return err
		}
		due = &d
	}

	svc, err := openService()
	if err != nil {
		return err
	}

	debt, err := svc.AddDebt(ledger.AddDebtInput{
		Person:  args[0],
		Note:    note,
		Type:    model.DebtType(dtype),
		DueDate: due,
		Amount:  amount,
	})
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded debt with %s (%s)", debt.Person, debt.ID)))
	return nil
}

func debtsSettleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settle <debt-id>",
		Short: "Toggle a debt between active and settled",
		Long: `Toggle a debt's settled state.

Settling can record an offsetting transaction in the selected wallet:
an expense when you owed, income when you were owed. Toggling back to
active does not retract that transaction.`,
		Args: cobra.ExactArgs(1),
		RunE: runDebtsSettle,
	}

	cmd.Flags().Bool("record", true, "record an offsetting transaction when settling")

	return cmd
}

func runDebtsSettle(cmd *cobra.Command, args []string) error {
	record, _ := cmd.Flags().GetBool("record")

	id, err := parseDebtID(args[0])
	if err != nil {
		return err
	}

	svc, err := openService()
	if err != nil {
		return err
	}

	debt, err := svc.ToggleSettled(id, record)
	if err != nil {
		return err
	}

	if debt.IsSettled {
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("Settled debt with %s", debt.Person)))
	} else {
		fmt.Println(cli.FormatWarning(fmt.Sprintf("Reopened debt with %s", debt.Person)))
	}
	return nil
}

func debtsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <debt-id>",
		Short: "Delete a debt record",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseDebtID(args[0])
			if err != nil {
				return err
			}
			svc, err := openService()
			if err != nil {
				return err
			}
			if err := svc.DeleteDebt(id); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Deleted debt"))
			return nil
		},
	}
}

func parseDebtID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.NewUserError(
			fmt.Sprintf("%q is not a debt id (shown by 'tally debts')", raw), common.ErrInvalidConfig)
	}
	return id, nil
}
