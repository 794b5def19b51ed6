package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage categories",
		RunE:  runCategoriesList,
	}

	cmd.AddCommand(categoriesAddCmd())
	cmd.AddCommand(categoriesDeleteCmd())

	return cmd
}

func runCategoriesList(_ *cobra.Command, _ []string) error {
	svc, err := openService()
	if err != nil {
		return err
	}

	doc := svc.Data()
	var sb strings.Builder
	for i, c := range doc.Categories {
		if i > 0 {
			sb.WriteByte('\n')
		}
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Render("●")
		fmt.Fprintf(&sb, "%s %-16s %-8s", dot, c.Name, c.Type)
		if c.IsSystem {
			sb.WriteString(cli.SubtleStyle.Render(" system"))
		}
	}

	fmt.Println(cli.RenderBox("Categories", sb.String()))
	return nil
}

func categoriesAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE:  runCategoriesAdd,
	}

	cmd.Flags().StringP("type", "t", "expense", "category type (income, expense)")
	cmd.Flags().StringP("color", "c", "#95E1D3", "display color (hex)")

	return cmd
}

func runCategoriesAdd(cmd *cobra.Command, args []string) error {
	ctype, _ := cmd.Flags().GetString("type")
	color, _ := cmd.Flags().GetString("color")

	svc, err := openService()
	if err != nil {
		return err
	}

	cat, err := svc.AddCategory(args[0], color, model.TransactionType(ctype))
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created %s category %q", cat.Type, cat.Name)))
	return nil
}

func categoriesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete an unused category",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			if err := svc.DeleteCategory(args[0]); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted category %q", args[0])))
			return nil
		},
	}
}
