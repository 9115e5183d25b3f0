package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/feedlyapi/feedly-go/client"
	"github.com/feedlyapi/feedly-go/internal/config"
	"github.com/feedlyapi/feedly-go/internal/logger"
)

var (
	debug   bool
	token   string
	timeout time.Duration
)

// newClient builds the API client from FEEDLY_* settings; tests replace it.
var newClient = func() (*client.Client, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	opts := cfg.ClientOptions()
	opts = append(opts, client.WithLogger(log.Logger))
	if debug {
		opts = append(opts, client.WithDebugLogging(true))
	}
	return client.New(opts...)
}

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Stack().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "feedlyctl",
		Short:         "Command line access to the Feedly v3 API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = logger.NewConsole(cmd.ErrOrStderr(), "feedlyctl", debug)
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Log every request and response")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Access token (defaults to FEEDLY_ACCESS_TOKEN)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Deadline for the whole command")

	// Sub-commands
	rootCmd.AddCommand(newAuthURLCmd())
	rootCmd.AddCommand(newExchangeCodeCmd())
	rootCmd.AddCommand(newRefreshTokenCmd())
	rootCmd.AddCommand(newProfileCmd())
	rootCmd.AddCommand(newOPMLCmd())
	rootCmd.AddCommand(newSubscriptionsCmd())
	rootCmd.AddCommand(newTagsCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newStreamCmd())
	rootCmd.AddCommand(newEntryCmd())
	rootCmd.AddCommand(newEntriesCmd())
	rootCmd.AddCommand(newMarkReadCmd())
	rootCmd.AddCommand(newMarkUnsavedCmd())
	rootCmd.AddCommand(newSaveForLaterCmd())
	rootCmd.AddCommand(newReadsCmd())
	rootCmd.AddCommand(newCategoriesCmd())
	rootCmd.AddCommand(newRenameCategoryCmd())
	rootCmd.AddCommand(newDeleteCategoryCmd())
	rootCmd.AddCommand(newPreferencesCmd())
	rootCmd.AddCommand(newSetPreferenceCmd())
	rootCmd.AddCommand(newDeletePreferenceCmd())

	return rootCmd
}

// run builds a client, calls fn under the command deadline and logs timing.
func run(cmd *cobra.Command, op string, fn func(ctx context.Context, c *client.Client) error) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	log.Debug().Str("op", op).Str("host", c.ServiceHost()).Msg("calling feedly")

	start := time.Now()
	err = fn(ctx, c)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Stack().Err(err).Str("op", op).Dur("elapsed", elapsed).Msg(op + " failed")
		return err
	}
	log.Debug().Str("op", op).Dur("elapsed", elapsed).Msg(op + " completed")
	return nil
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// printResponse writes a mutating call's raw result and fails on non-2xx.
func printResponse(w io.Writer, resp *client.Response) error {
	out := map[string]any{"status": resp.StatusCode}
	if len(resp.Body) > 0 {
		out["body"] = resp.String()
	}
	if err := printJSON(w, out); err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("feedly returned status %d", resp.StatusCode)
	}
	return nil
}

// --------------------------------------------------------------------
// Authentication
// --------------------------------------------------------------------

func newAuthURLCmd() *cobra.Command {
	var callback string
	cmd := &cobra.Command{
		Use:   "auth-url",
		Short: "Print the OAuth authorization URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), c.AuthorizationURL(callback))
			return err
		},
	}
	cmd.Flags().StringVar(&callback, "callback", "", "Redirect URI registered for the client (required)")
	_ = cmd.MarkFlagRequired("callback")
	return cmd
}

func newExchangeCodeCmd() *cobra.Command {
	var redirectURI, code string
	cmd := &cobra.Command{
		Use:   "exchange-code",
		Short: "Exchange an authorization code for tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, "exchange code", func(ctx context.Context, c *client.Client) error {
				tok, err := c.ExchangeCode(ctx, redirectURI, code)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), tok)
			})
		},
	}
	cmd.Flags().StringVar(&redirectURI, "redirect-uri", "", "Redirect URI used in the authorization request (required)")
	cmd.Flags().StringVar(&code, "code", "", "Authorization code (required)")
	_ = cmd.MarkFlagRequired("redirect-uri")
	_ = cmd.MarkFlagRequired("code")
	return cmd
}

func newRefreshTokenCmd() *cobra.Command {
	var refresh string
	cmd := &cobra.Command{
		Use:   "refresh-token",
		Short: "Obtain a new access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, "refresh token", func(ctx context.Context, c *client.Client) error {
				tok, err := c.RefreshAccessToken(ctx, refresh)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), tok)
			})
		},
	}
	cmd.Flags().StringVar(&refresh, "refresh-token", "", "Refresh token (required)")
	_ = cmd.MarkFlagRequired("refresh-token")
	return cmd
}

// --------------------------------------------------------------------
// Profile & subscriptions
// --------------------------------------------------------------------

func newProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the user profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, "get profile", func(ctx context.Context, c *client.Client) error {
				p, err := c.GetUserProfile(ctx, token)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), p)
			})
		},
	}
}

func newOPMLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "opml",
		Short: "Export subscriptions as OPML",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, "get opml", func(ctx context.Context, c *client.Client) error {
				doc, err := c.GetSubscriptionsOPML(ctx, token)
				if err != nil {
					return err
				}
				_, err = io.WriteString(cmd.OutOrStdout(), doc)
				return err
			})
		},
	}
}

func newSubscriptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subscriptions",
		Short: "List subscriptions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, "get subscriptions", func(ctx context.Context, c *client.Client) error {
				subs, err := c.GetSubscriptions(ctx, token)
				if err != nil {
					return err
				}
				log.Debug().Int("count", len(subs)).Msg("subscriptions listed")
				return printJSON(cmd.OutOrStdout(), subs)
			})
		},
	}
}

func newTagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, "get tags", func(ctx context.Context, c *client.Client) error {
				tags, err := c.GetTags(ctx, token)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), tags)
			})
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List followed topics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, "get topics", func(ctx context.Context, c *client.Client) error {
				topics, err := c.GetTopics(ctx, token)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), topics)
			})
		},
	}
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <preferences|categories|topics|tags|subscriptions|markers|entries>",
		Short: "Fetch a resource listing as raw JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := client.ParseInfoType(args[0])
			if err != nil {
				return err
			}
			return run(cmd, "get info", func(ctx context.Context, c *client.Client) error {
				raw, err := c.GetInfoByType(ctx, token, t)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), raw)
			})
		},
	}
}

// --------------------------------------------------------------------
// Streams & entries
// --------------------------------------------------------------------

func newStreamCmd() *cobra.Command {
	var (
		streamID, continuation, ranked string
		unreadOnly                     bool
		count                          int
		newerThan                      int64
	)
	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Fetch one page of a stream",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := client.StreamContentsParams{StreamID: streamID}
			flags := cmd.Flags()
			if flags.Changed("unread-only") {
				params.UnreadOnly = client.Bool(unreadOnly)
			}
			if flags.Changed("count") {
				params.Count = client.Int(count)
			}
			if flags.Changed("newer-than") {
				params.NewerThan = client.Int64(newerThan)
			}
			if flags.Changed("continuation") {
				params.Continuation = client.String(continuation)
			}
			if flags.Changed("ranked") {
				params.Ranked = client.String(ranked)
			}
			return run(cmd, "get stream", func(ctx context.Context, c *client.Client) error {
				page, err := c.GetFeedContent(ctx, token, params)
				if err != nil {
					return err
				}
				log.Debug().Int("items", len(page.Items)).Str("continuation", page.Continuation).Msg("stream page fetched")
				return printJSON(cmd.OutOrStdout(), page)
			})
		},
	}
	cmd.Flags().StringVar(&streamID, "stream-id", "", "Stream id, e.g. feed/http://example.com/rss (required)")
	cmd.Flags().BoolVar(&unreadOnly, "unread-only", false, "Only unread entries")
	cmd.Flags().IntVar(&count, "count", 20, "Page size")
	cmd.Flags().Int64Var(&newerThan, "newer-than", 0, "Only entries newer than this timestamp (ms)")
	cmd.Flags().StringVar(&continuation, "continuation", "", "Continuation from a previous page")
	cmd.Flags().StringVar(&ranked, "ranked", "newest", "Order: newest or oldest")
	_ = cmd.MarkFlagRequired("stream-id")
	return cmd
}

func newEntryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "entry <entry-id>",
		Short: "Fetch a single entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, "get entry", func(ctx context.Context, c *client.Client) error {
				entries, err := c.GetEntryContent(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), entries)
			})
		},
	}
}

func newEntriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "entries <entry-id>...",
		Short: "Fetch several entries in one request",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, "get entries", func(ctx context.Context, c *client.Client) error {
				entries, err := c.GetEntriesContent(ctx, args)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), entries)
			})
		},
	}
}

// --------------------------------------------------------------------
// Markers & tags
// --------------------------------------------------------------------

func newMarkReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mark-read <entry-id>...",
		Short: "Mark entries as read",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, "mark read", func(ctx context.Context, c *client.Client) error {
				resp, err := c.MarkEntriesRead(ctx, token, args)
				if err != nil {
					return err
				}
				return printResponse(cmd.OutOrStdout(), resp)
			})
		},
	}
}

func newMarkUnsavedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mark-unsaved <entry-id>...",
		Short: "Remove entries from saved for later",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, "mark unsaved", func(ctx context.Context, c *client.Client) error {
				resp, err := c.MarkEntriesUnsaved(ctx, token, args)
				if err != nil {
					return err
				}
				return printResponse(cmd.OutOrStdout(), resp)
			})
		},
	}
}

func newSaveForLaterCmd() *cobra.Command {
	var userID string
	cmd := &cobra.Command{
		Use:   "save-for-later <entry-id>...",
		Short: "Save entries for later",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, "save for later", func(ctx context.Context, c *client.Client) error {
				resp, err := c.SaveForLater(ctx, token, userID, args)
				if err != nil {
					return err
				}
				return printResponse(cmd.OutOrStdout(), resp)
			})
		},
	}
	cmd.Flags().StringVar(&userID, "user-id", "", "Feedly user id (required)")
	_ = cmd.MarkFlagRequired("user-id")
	return cmd
}

func newReadsCmd() *cobra.Command {
	var newerThan int64
	cmd := &cobra.Command{
		Use:   "reads",
		Short: "List recent read operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			var since *int64
			if cmd.Flags().Changed("newer-than") {
				since = client.Int64(newerThan)
			}
			return run(cmd, "get reads", func(ctx context.Context, c *client.Client) error {
				m, err := c.GetReadMarkers(ctx, token, since)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), m)
			})
		},
	}
	cmd.Flags().Int64Var(&newerThan, "newer-than", 0, "Only operations newer than this timestamp (ms)")
	return cmd
}

// --------------------------------------------------------------------
// Categories
// --------------------------------------------------------------------

func newCategoriesCmd() *cobra.Command {
	var sorted bool
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, "get categories", func(ctx context.Context, c *client.Client) error {
				var (
					cats []client.Category
					err  error
				)
				if sorted {
					cats, err = c.GetSortedCategories(ctx, token)
				} else {
					cats, err = c.GetCategories(ctx, token)
				}
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), cats)
			})
		},
	}
	cmd.Flags().BoolVar(&sorted, "sorted", false, "Use the order shown in Feedly")
	return cmd
}

func newRenameCategoryCmd() *cobra.Command {
	var label string
	cmd := &cobra.Command{
		Use:   "rename-category <encoded-category-id>",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, "rename category", func(ctx context.Context, c *client.Client) error {
				resp, err := c.RenameCategory(ctx, token, args[0], label)
				if err != nil {
					return err
				}
				return printResponse(cmd.OutOrStdout(), resp)
			})
		},
	}
	cmd.Flags().StringVar(&label, "label", "", "New label (required)")
	_ = cmd.MarkFlagRequired("label")
	return cmd
}

func newDeleteCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-category <encoded-category-id>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, "delete category", func(ctx context.Context, c *client.Client) error {
				resp, err := c.DeleteCategory(ctx, token, args[0])
				if err != nil {
					return err
				}
				return printResponse(cmd.OutOrStdout(), resp)
			})
		},
	}
}

// --------------------------------------------------------------------
// Preferences
// --------------------------------------------------------------------

func newPreferencesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preferences",
		Short: "Show application preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, "get preferences", func(ctx context.Context, c *client.Client) error {
				prefs, err := c.GetPreferences(ctx, token)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), prefs)
			})
		},
	}
}

func newSetPreferenceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-preference <key=value>...",
		Short: "Set one or more preferences",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs := client.Preferences{}
			for _, kv := range args {
				k, v, ok := strings.Cut(kv, "=")
				if !ok || k == "" {
					return fmt.Errorf("invalid preference %q, want key=value", kv)
				}
				prefs[k] = v
			}
			return run(cmd, "update preferences", func(ctx context.Context, c *client.Client) error {
				resp, err := c.UpdatePreferences(ctx, token, prefs)
				if err != nil {
					return err
				}
				return printResponse(cmd.OutOrStdout(), resp)
			})
		},
	}
}

func newDeletePreferenceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-preference <key>",
		Short: "Delete a preference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, "delete preference", func(ctx context.Context, c *client.Client) error {
				resp, err := c.DeletePreference(ctx, token, args[0])
				if err != nil {
					return err
				}
				return printResponse(cmd.OutOrStdout(), resp)
			})
		},
	}
}
