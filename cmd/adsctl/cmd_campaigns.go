package main

import (
	"github.com/spf13/cobra"

	"campaign-manager/internal/core/domain"
)

var (
	campaignName      string
	campaignObjective string
	campaignType      string
	campaignBudget    float64
	campaignStart     string
	campaignEnd       string
	campaignTargetCPA float64
	campaignBidding   string
)

// campaignsCmd is the parent command for campaign operations
var campaignsCmd = &cobra.Command{
	Use:     "campaigns",
	Aliases: []string{"campaign", "c"},
	Short:   "List, create and transition campaigns",
}

var campaignsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List campaigns, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		campaigns, err := app.gw.ListCampaigns(cmd.Context())
		if err != nil {
			return err
		}
		return printCampaigns(cmd.OutOrStdout(), campaigns)
	},
}

var campaignsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a campaign and its ad groups",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := app.gw.GetCampaign(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printCampaign(cmd.OutOrStdout(), c)
	},
}

var campaignsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a DRAFT campaign",
	Long: `Creates a campaign in status DRAFT. Nothing is sent to Google Ads until
the campaign is published.

Example:
  adsctl campaigns create --name "Spring Sale" --objective Sales \
    --budget 50 --start 2024-03-01 --end 2024-03-31`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := domain.CampaignFormData{
			Name:            campaignName,
			Objective:       campaignObjective,
			CampaignType:    campaignType,
			DailyBudget:     campaignBudget,
			BiddingStrategy: campaignBidding,
		}
		var err error
		if f.StartDate, err = domain.ParseDate(campaignStart); err != nil {
			return &domain.ValidationError{Field: "start_date", Reason: err.Error()}
		}
		if f.EndDate, err = domain.ParseDate(campaignEnd); err != nil {
			return &domain.ValidationError{Field: "end_date", Reason: err.Error()}
		}
		if cmd.Flags().Changed("target-cpa") {
			f.TargetCPA = &campaignTargetCPA
		}
		c, err := app.ctrl.CreateCampaign(cmd.Context(), f)
		if err != nil {
			return err
		}
		return printCampaign(cmd.OutOrStdout(), c)
	},
}

var campaignsPublishCmd = &cobra.Command{
	Use:   "publish <id>",
	Short: "Publish a DRAFT campaign to Google Ads",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := app.gw.GetCampaign(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if c, err = app.ctrl.PublishCampaign(cmd.Context(), *c); err != nil {
			return err
		}
		return printCampaign(cmd.OutOrStdout(), c)
	},
}

var campaignsPauseCmd = &cobra.Command{
	Use:     "pause <id>",
	Aliases: []string{"disable"},
	Short:   "Pause a PUBLISHED campaign",
	Long:    `Pauses a published campaign. A paused campaign cannot be published again.`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := app.gw.GetCampaign(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if c, err = app.ctrl.PauseCampaign(cmd.Context(), *c); err != nil {
			return err
		}
		return printCampaign(cmd.OutOrStdout(), c)
	},
}

func init() {
	fl := campaignsCreateCmd.Flags()
	fl.StringVar(&campaignName, "name", "", "campaign name")
	fl.StringVar(&campaignObjective, "objective", "", "campaign objective, e.g. Sales or Leads")
	fl.StringVar(&campaignType, "type", "", "campaign type (default "+domain.DefaultCampaignType+")")
	fl.Float64Var(&campaignBudget, "budget", 0, "daily budget")
	fl.StringVar(&campaignStart, "start", "", "start date, YYYY-MM-DD")
	fl.StringVar(&campaignEnd, "end", "", "end date, YYYY-MM-DD")
	fl.Float64Var(&campaignTargetCPA, "target-cpa", 0, "target cost per acquisition")
	fl.StringVar(&campaignBidding, "bidding", "", "bidding strategy (default "+domain.DefaultBiddingStrategy+")")
	_ = campaignsCreateCmd.MarkFlagRequired("name")

	campaignsCmd.AddCommand(campaignsListCmd, campaignsGetCmd, campaignsCreateCmd, campaignsPublishCmd, campaignsPauseCmd)
}
