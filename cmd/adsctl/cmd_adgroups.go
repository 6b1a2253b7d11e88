package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"campaign-manager/internal/core/domain"
	"campaign-manager/internal/lifecycle"
)

var (
	adGroupForm domain.AdGroupFormData
	adGroupCPC  float64
	adGroupCPM  float64
	assumeYes   bool
)

// adGroupsCmd is the parent command for ad group operations
var adGroupsCmd = &cobra.Command{
	Use:     "adgroups",
	Aliases: []string{"adgroup", "ag"},
	Short:   "Manage the ad groups of a campaign",
}

var adGroupsListCmd = &cobra.Command{
	Use:   "list <campaign-id>",
	Short: "List the ad groups of a campaign",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		groups, err := app.gw.ListAdGroups(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printAdGroups(cmd.OutOrStdout(), groups)
	},
}

var adGroupsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one ad group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := app.gw.GetAdGroup(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printAdGroup(cmd.OutOrStdout(), g)
	},
}

var adGroupsCreateCmd = &cobra.Command{
	Use:   "create <campaign-id>",
	Short: "Create an ENABLED ad group under a campaign",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f := adGroupForm
		applyBids(cmd.Flags(), &f)
		warnCreative(cmd.ErrOrStderr(), f)
		g, err := app.ctrl.CreateAdGroup(cmd.Context(), args[0], f)
		if err != nil {
			return err
		}
		return printAdGroup(cmd.OutOrStdout(), g)
	},
}

var adGroupsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change fields of an ad group",
	Long:  `Only the flags given on the command line are changed.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := app.gw.GetAdGroup(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		f := changedFields(cmd.Flags(), g.FormData())
		warnCreative(cmd.ErrOrStderr(), f)
		if g, err = app.ctrl.UpdateAdGroup(cmd.Context(), *g, f); err != nil {
			return err
		}
		return printAdGroup(cmd.OutOrStdout(), g)
	},
}

var adGroupsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove an ad group for good",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := app.gw.GetAdGroup(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		var confirm lifecycle.Confirmer = lifecycle.ConfirmFunc(func(string) bool { return true })
		if !assumeYes {
			confirm = promptConfirmer{in: cmd.InOrStdin(), out: cmd.ErrOrStderr()}
		}
		deleted, err := app.ctrl.DeleteAdGroup(cmd.Context(), *g, confirm)
		if err != nil {
			return err
		}
		if !deleted {
			fmt.Fprintln(cmd.ErrOrStderr(), "Cancelled.")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Ad group %s deleted.\n", g.ID)
		return nil
	},
}

var adGroupsPauseCmd = &cobra.Command{
	Use:   "pause <id>",
	Short: "Pause an ENABLED ad group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := app.gw.GetAdGroup(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if g, err = app.ctrl.PauseAdGroup(cmd.Context(), *g); err != nil {
			return err
		}
		return printAdGroup(cmd.OutOrStdout(), g)
	},
}

var adGroupsEnableCmd = &cobra.Command{
	Use:   "enable <id>",
	Short: "Enable a PAUSED ad group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := app.gw.GetAdGroup(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if g, err = app.ctrl.EnableAdGroup(cmd.Context(), *g); err != nil {
			return err
		}
		return printAdGroup(cmd.OutOrStdout(), g)
	},
}

// promptConfirmer asks on the terminal. Anything but y or yes declines.
type promptConfirmer struct {
	in  io.Reader
	out io.Writer
}

func (p promptConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(p.out, "%s [y/N] ", prompt)
	line, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func addAdGroupFlags(fl *pflag.FlagSet) {
	fl.StringVar(&adGroupForm.Name, "name", "", "ad group name")
	fl.StringVar(&adGroupForm.TargetAudience, "audience", "", "target audience")
	fl.StringVar(&adGroupForm.Keywords, "keywords", "", "comma separated keywords")
	fl.Float64Var(&adGroupCPC, "cpc", 0, "max cost per click")
	fl.Float64Var(&adGroupCPM, "cpm", 0, "max cost per thousand impressions")
	fl.StringVar(&adGroupForm.AdHeadline, "headline", "", "headline 1, at most 30 characters")
	fl.StringVar(&adGroupForm.AdHeadline2, "headline2", "", "headline 2")
	fl.StringVar(&adGroupForm.AdHeadline3, "headline3", "", "headline 3")
	fl.StringVar(&adGroupForm.AdDescription, "description", "", "description 1, at most 90 characters")
	fl.StringVar(&adGroupForm.AdDescription2, "description2", "", "description 2")
	fl.StringVar(&adGroupForm.FinalURL, "final-url", "", "landing page URL")
	fl.StringVar(&adGroupForm.DisplayURL, "display-url", "", "URL shown in the ad")
}

func applyBids(fl *pflag.FlagSet, f *domain.AdGroupFormData) {
	if fl.Changed("cpc") {
		v := adGroupCPC
		f.CPCBid = &v
	}
	if fl.Changed("cpm") {
		v := adGroupCPM
		f.CPMBid = &v
	}
}

// changedFields overlays the flags set on the command line onto base.
func changedFields(fl *pflag.FlagSet, base domain.AdGroupFormData) domain.AdGroupFormData {
	set := map[string]*string{
		"name":         &base.Name,
		"audience":     &base.TargetAudience,
		"keywords":     &base.Keywords,
		"headline":     &base.AdHeadline,
		"headline2":    &base.AdHeadline2,
		"headline3":    &base.AdHeadline3,
		"description":  &base.AdDescription,
		"description2": &base.AdDescription2,
		"final-url":    &base.FinalURL,
		"display-url":  &base.DisplayURL,
	}
	for name, dst := range set {
		if fl.Changed(name) {
			*dst, _ = fl.GetString(name)
		}
	}
	applyBids(fl, &base)
	return base
}

func warnCreative(w io.Writer, f domain.AdGroupFormData) {
	for _, issue := range domain.CreativeLimits(f) {
		fmt.Fprintf(w, "warning: %s\n", issue.Error())
	}
}

func init() {
	addAdGroupFlags(adGroupsCreateCmd.Flags())
	_ = adGroupsCreateCmd.MarkFlagRequired("name")
	addAdGroupFlags(adGroupsUpdateCmd.Flags())
	adGroupsDeleteCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "do not ask for confirmation")

	adGroupsCmd.AddCommand(adGroupsListCmd, adGroupsGetCmd, adGroupsCreateCmd, adGroupsUpdateCmd,
		adGroupsDeleteCmd, adGroupsPauseCmd, adGroupsEnableCmd)
}
