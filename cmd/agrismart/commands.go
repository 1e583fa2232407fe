package main

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/agrismart/agrismart-client/client"
	"github.com/agrismart/agrismart-client/endpoints"
)

// --------------------------------------------------------------------
// Authentication
// --------------------------------------------------------------------

func newLoginCmd(o *rootOptions) *cobra.Command {
	var creds client.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and save the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, "login", func(ctx context.Context, c *client.Client) (json.RawMessage, error) {
				return c.Login(ctx, creds)
			})
		},
	}
	cmd.Flags().StringVar(&creds.Email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&creds.Password, "password", "", "Account password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd(o *rootOptions) *cobra.Command {
	var req client.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new farmer account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, "register", func(ctx context.Context, c *client.Client) (json.RawMessage, error) {
				return c.Register(ctx, req)
			})
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "Full name (required)")
	cmd.Flags().StringVar(&req.Email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&req.Password, "password", "", "Account password (required)")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "Phone number (optional)")
	cmd.Flags().StringVar(&req.Location, "location", "", "Village or district (optional)")
	cmd.Flags().Float64Var(&req.FarmSize, "farm-size", 0, "Farm size in acres (optional)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.newClient(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			c.Logout(cmd.Context())
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newRefreshTokenCmd(o *rootOptions) *cobra.Command {
	return newOpCmd(o, "refresh-token", "Exchange the saved token for a new one", (*client.Client).RefreshToken)
}

func newStatusCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether a session token is saved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.newClient(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			ok, err := c.IsAuthenticated(cmd.Context())
			if err != nil {
				return err
			}
			if ok {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in (%s)\n", c.BaseURL())
			} else {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
			}
			return nil
		},
	}
}

// --------------------------------------------------------------------
// Profile
// --------------------------------------------------------------------

func newProfileCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{Use: "profile", Short: "View or update your profile"}
	cmd.AddCommand(newOpCmd(o, "get", "Show your profile", (*client.Client).GetProfile))

	var data string
	update := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields from a JSON object",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var upd client.ProfileUpdate
			if err := decodeData(data, &upd); err != nil {
				return err
			}
			return o.run(cmd, "profile update", func(ctx context.Context, c *client.Client) (json.RawMessage, error) {
				return c.UpdateProfile(ctx, upd)
			})
		},
	}
	update.Flags().StringVar(&data, "data", "", `Profile JSON, e.g. '{"location":"Nashik"}'`)
	cmd.AddCommand(update)
	return cmd
}

// --------------------------------------------------------------------
// Pest detection
// --------------------------------------------------------------------

func newPestCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{Use: "pest", Short: "Pest detection"}
	cmd.AddCommand(&cobra.Command{
		Use:   "detect <image>",
		Short: "Upload a crop photo for pest identification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			up, f, err := client.OpenUpload(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()
			return o.run(cmd, "pest detect", func(ctx context.Context, c *client.Client) (json.RawMessage, error) {
				return c.DetectPest(ctx, up)
			})
		},
	})
	cmd.AddCommand(newOpCmd(o, "history", "List previous detections", (*client.Client).GetPestHistory))
	cmd.AddCommand(newOpCmd(o, "gallery", "Browse the pest gallery", (*client.Client).GetPestGallery))
	return cmd
}

// --------------------------------------------------------------------
// Read-only groups
// --------------------------------------------------------------------

func newSoilCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{Use: "soil", Short: "Soil health"}
	cmd.AddCommand(newOpCmd(o, "health", "Current soil health", (*client.Client).GetSoilHealth))
	cmd.AddCommand(newOpCmd(o, "recommendations", "Soil treatment recommendations", (*client.Client).GetSoilRecommendations))
	cmd.AddCommand(newOpCmd(o, "history", "Soil test history", (*client.Client).GetSoilHistory))
	return cmd
}

func newWeatherCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{Use: "weather", Short: "Weather"}
	cmd.AddCommand(newOpCmd(o, "current", "Current conditions", (*client.Client).GetCurrentWeather))
	cmd.AddCommand(newOpCmd(o, "forecast", "Forecast", (*client.Client).GetWeatherForecast))
	cmd.AddCommand(newOpCmd(o, "alerts", "Active weather alerts", (*client.Client).GetWeatherAlerts))
	return cmd
}

func newCropCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{Use: "crop", Short: "Crop management"}
	cmd.AddCommand(newOpCmd(o, "yield", "Yield estimates", (*client.Client).GetCropYield))
	cmd.AddCommand(newOpCmd(o, "schedule", "Crop calendar", (*client.Client).GetCropSchedule))
	cmd.AddCommand(newOpCmd(o, "recommendations", "Crop recommendations", (*client.Client).GetCropRecommendations))
	return cmd
}

func newMarketCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{Use: "market", Short: "Market data"}
	cmd.AddCommand(newOpCmd(o, "prices", "Current mandi prices", (*client.Client).GetMarketPrices))
	cmd.AddCommand(newOpCmd(o, "trends", "Price trends", (*client.Client).GetMarketTrends))
	return cmd
}

// --------------------------------------------------------------------
// Community
// --------------------------------------------------------------------

func newCommunityCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{Use: "community", Short: "Community reports and posts"}
	cmd.AddCommand(newOpCmd(o, "reports", "List community reports", (*client.Client).GetCommunityReports))
	cmd.AddCommand(newOpCmd(o, "posts", "List community posts", (*client.Client).GetCommunityPosts))

	var reportData string
	submit := &cobra.Command{
		Use:   "submit-report",
		Short: "Share a field report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var report client.CommunityReport
			if err := decodeData(reportData, &report); err != nil {
				return err
			}
			return o.run(cmd, "community submit-report", func(ctx context.Context, c *client.Client) (json.RawMessage, error) {
				return c.SubmitCommunityReport(ctx, report)
			})
		},
	}
	submit.Flags().StringVar(&reportData, "data", "", `Report JSON, e.g. '{"title":"Locusts","description":"east field"}'`)
	cmd.AddCommand(submit)

	var postData string
	create := &cobra.Command{
		Use:   "create-post",
		Short: "Publish a discussion post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var post client.CommunityPost
			if err := decodeData(postData, &post); err != nil {
				return err
			}
			return o.run(cmd, "community create-post", func(ctx context.Context, c *client.Client) (json.RawMessage, error) {
				return c.CreateCommunityPost(ctx, post)
			})
		},
	}
	create.Flags().StringVar(&postData, "data", "", `Post JSON, e.g. '{"title":"Drip","content":"..."}'`)
	cmd.AddCommand(create)
	return cmd
}

// --------------------------------------------------------------------
// Catalog
// --------------------------------------------------------------------

func newEndpointsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "endpoints",
		Short: "Print the API endpoint catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := endpoints.Catalog()
			names := make([]string, 0, len(cat))
			for name := range cat {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-22s %s\n", name, cat[name])
			}
			return nil
		},
	}
}
