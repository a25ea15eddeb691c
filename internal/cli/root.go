package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"paygate/internal/config"
	"paygate/internal/logging"
	"paygate/internal/models"
)

var (
	cfgFile   string
	overrides config.Overrides
	app       *App
	zlog      *logging.ZapLogger
	version   = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "paygate",
	Short: "Terminal client for the payment gateway",
	Long: `paygate is a terminal client for the payment-gateway API.

It authenticates a merchant via API key, lists and filters invoices,
shows invoice detail, and submits new invoices.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		cfg, err := config.Load(cfgFile, overrides)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		zlog, err = logging.NewZapLogger(cfg.Environment)
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}

		app, err = NewApp(cmd.Context(), cfg, zlog)
		if err != nil {
			return fmt.Errorf("failed to initialize: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if app != nil {
			_ = app.Close()
		}
		if zlog != nil {
			_ = zlog.Sync()
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("paygate %s\n", version)
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store and validate an API key",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Login(cmd.Context())
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored credential",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Logout(cmd.Context())
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a merchant account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Signup(cmd.Context())
	},
}

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Show the authenticated account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.ShowAccount(cmd.Context())
	},
}

var listFilters models.InvoiceFilters

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List invoices",
	Long:  `List invoices for the authenticated account, optionally scoped by status, date range, free-text search and page.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.List(cmd.Context(), listFilters)
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single invoice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Show(cmd.Context(), args[0])
	},
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an invoice interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Create(cmd.Context())
	},
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (JSON)")
	rootCmd.PersistentFlags().StringVar(&overrides.BaseURL, "base-url", "", "gateway base URL")
	rootCmd.PersistentFlags().IntVar(&overrides.TimeoutSeconds, "timeout", 0, "request timeout in seconds")
	rootCmd.PersistentFlags().StringVar(&overrides.DBPath, "db", "", "path to the local credential store")
	rootCmd.PersistentFlags().StringVarP(&overrides.Output, "output", "o", "", "output format: table, json or yaml")

	listCmd.Flags().StringVar(&listFilters.Status, "status", "", "filter by status (pending, approved, rejected or all)")
	listCmd.Flags().StringVar(&listFilters.StartDate, "start-date", "", "filter from date (ISO-8601)")
	listCmd.Flags().StringVar(&listFilters.EndDate, "end-date", "", "filter until date (ISO-8601)")
	listCmd.Flags().StringVar(&listFilters.Search, "search", "", "free-text search")
	listCmd.Flags().IntVar(&listFilters.Page, "page", 0, "page number")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(versionCmd)
}

// SetVersion injects the build version stamped by the linker.
func SetVersion(v string) {
	version = v
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

// Run starts the interactive REPL on the App.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Welcome to paygate (type 'help' for commands)")
	_ = a.session.Init(ctx)
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
	return nil
}
