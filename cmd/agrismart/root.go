package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/agrismart/agrismart-client/client"
	"github.com/agrismart/agrismart-client/internal/config"
	"github.com/agrismart/agrismart-client/internal/factory"
)

// rootOptions carries persistent flag values and the loaded configuration.
type rootOptions struct {
	baseURL string
	store   string
	timeout time.Duration
	debug   bool

	cfg *config.Config
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	o := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "agrismart",
		Short:         "AgriSmart command line client",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.InitLogger(cmd.ErrOrStderr())
			cfg, err := config.New()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("base-url") {
				cfg.BaseURL = o.baseURL
			}
			if cmd.Flags().Changed("store") {
				cfg.SessionStore = o.store
			}
			if cmd.Flags().Changed("timeout") {
				cfg.Timeout = o.timeout
			}
			if o.debug {
				cfg.Debug = true
			}
			if err := cfg.ResolveDefaults(); err != nil {
				return err
			}
			config.SetLogLevel(cfg.Level())
			log.Debug().Str("base_url", cfg.BaseURL).Str("store", cfg.SessionStore).Msg("cli configured")
			o.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&o.baseURL, "base-url", "", "AgriSmart API origin (default from AGRISMART_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&o.store, "store", "", "Session store: memory, sqlite or redis (default from AGRISMART_SESSION_STORE)")
	rootCmd.PersistentFlags().DurationVar(&o.timeout, "timeout", 0, "Request timeout (default from AGRISMART_TIMEOUT)")
	rootCmd.PersistentFlags().BoolVarP(&o.debug, "debug", "d", false, "Enable verbose debug output")

	// Sub-commands
	rootCmd.AddCommand(newLoginCmd(o))
	rootCmd.AddCommand(newRegisterCmd(o))
	rootCmd.AddCommand(newLogoutCmd(o))
	rootCmd.AddCommand(newRefreshTokenCmd(o))
	rootCmd.AddCommand(newStatusCmd(o))
	rootCmd.AddCommand(newProfileCmd(o))
	rootCmd.AddCommand(newPestCmd(o))
	rootCmd.AddCommand(newSoilCmd(o))
	rootCmd.AddCommand(newWeatherCmd(o))
	rootCmd.AddCommand(newCropCmd(o))
	rootCmd.AddCommand(newMarketCmd(o))
	rootCmd.AddCommand(newOpCmd(o, "reports", "List generated farm reports", (*client.Client).GetReports))
	rootCmd.AddCommand(newOpCmd(o, "analytics", "Show farm analytics", (*client.Client).GetAnalytics))
	rootCmd.AddCommand(newCommunityCmd(o))
	rootCmd.AddCommand(newEndpointsCmd())

	return rootCmd
}

// newClient opens the configured session store and builds a Client. A 401
// prints a hint to sign in again.
func (o *rootOptions) newClient(cmd *cobra.Command) (*client.Client, error) {
	store, err := factory.NewSessionStore(cmd.Context(), o.cfg, log.Logger)
	if err != nil {
		return nil, err
	}
	errOut := cmd.ErrOrStderr()
	c, err := client.NewFromConfig(o.cfg, store,
		client.WithUnauthorizedHandler(func(_ context.Context, ev client.UnauthorizedEvent) {
			_, _ = fmt.Fprintf(errOut, "Session expired or invalid (%s %s). Run `agrismart login` to sign in again.\n", ev.Method, ev.Path)
		}),
	)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return c, nil
}

// run builds a client, calls fn and prints its JSON result.
func (o *rootOptions) run(cmd *cobra.Command, name string, fn func(context.Context, *client.Client) (json.RawMessage, error)) error {
	c, err := o.newClient(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	start := time.Now()
	body, err := fn(cmd.Context(), c)
	elapsed := time.Since(start)
	if err != nil {
		log.Debug().Err(err).Str("command", name).Dur("elapsed", elapsed).Msg("request failed")
		return err
	}
	log.Debug().Str("command", name).Int("bytes", len(body)).Dur("elapsed", elapsed).Msg("request completed")
	return printJSON(cmd.OutOrStdout(), body)
}

// printJSON writes body indented; non-JSON bodies are written verbatim.
func printJSON(w io.Writer, body json.RawMessage) error {
	if len(body) == 0 {
		return nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		buf.Reset()
		buf.Write(body)
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)
	return err
}

// newOpCmd builds a leaf command for an operation that takes no payload.
func newOpCmd(o *rootOptions, use, short string, op func(*client.Client, context.Context) (json.RawMessage, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, use, func(ctx context.Context, c *client.Client) (json.RawMessage, error) {
				return op(c, ctx)
			})
		},
	}
}

// decodeData parses a --data JSON flag into v.
func decodeData(data string, v any) error {
	if data == "" {
		return fmt.Errorf("--data is required")
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return fmt.Errorf("invalid --data JSON: %w", err)
	}
	return nil
}
