package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/common"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change settings",
		RunE:  runSettingsShow,
	}

	cmd.AddCommand(settingsCurrencyCmd())
	cmd.AddCommand(settingsPrivacyCmd())
	cmd.AddCommand(settingsNameCmd())

	return cmd
}

func runSettingsShow(_ *cobra.Command, _ []string) error {
	svc, err := openService()
	if err != nil {
		return err
	}

	doc := svc.Data()
	privacy := "off"
	if doc.Settings.PrivacyMode {
		privacy = "on"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Currency: %s\n", doc.Settings.Currency)
	fmt.Fprintf(&sb, "Privacy:  %s\n", privacy)
	if doc.Profile.Name != "" {
		fmt.Fprintf(&sb, "Name:     %s\n", doc.Profile.Name)
	}
	fmt.Fprintf(&sb, "Data:     %s", dataPath())

	fmt.Println(cli.RenderBox("Settings", sb.String()))
	return nil
}

func settingsCurrencyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "currency <code>",
		Short: "Set the display currency (formatting only, no conversion)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			if err := svc.SetCurrency(args[0]); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Currency set to " + strings.ToUpper(args[0])))
			return nil
		},
	}
}

func settingsPrivacyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "privacy <on|off>",
		Short: "Mask monetary figures in all output",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var enabled bool
			switch args[0] {
			case "on":
				enabled = true
			case "off":
				enabled = false
			default:
				return common.NewUserError("privacy takes 'on' or 'off'", common.ErrInvalidConfig)
			}

			svc, err := openService()
			if err != nil {
				return err
			}
			if err := svc.SetPrivacyMode(enabled); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Privacy mode " + args[0]))
			return nil
		},
	}
}

func settingsNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name <name>",
		Short: "Set the profile display name",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			if err := svc.SetProfileName(args[0]); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Hello, " + args[0]))
			return nil
		},
	}
}
