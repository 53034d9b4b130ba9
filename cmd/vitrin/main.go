package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vitrin/vitrin-cli/cmd/commands"
	"github.com/vitrin/vitrin-cli/internal/cli"
	"github.com/vitrin/vitrin-cli/internal/logging"
	"github.com/vitrin/vitrin-cli/pkg/files"
	"github.com/vitrin/vitrin-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	flagQuiet   bool
	flagForce   bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "vitrin",
	Short: "Terminal storefront with a built-in back office",
	Long: `Vitrin is a terminal-based storefront. The default command opens the
customer-facing landing view; the back office for managing products and
categories lives behind 'vitrin admin'.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(flagQuiet, flagForce)
	},
	Run: func(cmd *cobra.Command, args []string) {
		runTUI(false)
	},
}

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Open the back-office TUI",
	Long:  `Opens the product and category management views. Requires a session; signs you in first when none exists.`,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI(true)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Vitrin",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Vitrin version %s\n", version)
	},
}

func runTUI(admin bool) {
	if !files.Exists() {
		fmt.Fprintf(os.Stderr, "Error: No %s directory found in the current directory.\n", files.VitrinDir)
		fmt.Fprintf(os.Stderr, "Please run 'vitrin init' first to initialize a store.\n")
		os.Exit(1)
	}

	if err := logging.Init(files.LogsPath(), flagVerbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	ctx := cli.NewCommandContext()
	defer ctx.Close()

	s, err := ctx.Store()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to open the store database: %v\n", err)
		os.Exit(1)
	}
	authSvc, err := ctx.Auth()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to set up authentication: %v\n", err)
		os.Exit(1)
	}
	bucket, err := ctx.Bucket()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to set up image storage: %v\n", err)
		os.Exit(1)
	}
	settings, err := ctx.Settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to read settings: %v\n", err)
		os.Exit(1)
	}

	var app *tui.App
	if admin {
		app = tui.NewAdminApp(s, authSvc, bucket, settings.UI)
	} else {
		app = tui.NewApp(s, authSvc, bucket, settings.UI)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
		fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress informational output")
	rootCmd.PersistentFlags().BoolVarP(&flagForce, "force", "f", false, "skip confirmation prompts")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewInitCommand())
	rootCmd.AddCommand(commands.NewLoginCommand())
	rootCmd.AddCommand(commands.NewSignupCommand())
	rootCmd.AddCommand(commands.NewLogoutCommand())
	rootCmd.AddCommand(commands.NewProductsCommand())
	rootCmd.AddCommand(commands.NewCategoriesCommand())
	rootCmd.AddCommand(commands.NewDeleteCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Command execution failed: %v\n", err)
		os.Exit(1)
	}
}
