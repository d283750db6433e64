package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	serverURL  string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "chatarr",
	Short: "CLI client for the chatarr conversational media assistant",
	Long: `chatarr - CLI client for the chatarr conversational media assistant

Talk to your movie and series managers in plain language:
search, download, delete, and check download status.

Run 'chatarrd' to start the server daemon.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8585", "Server URL")
	rootCmd.PersistentFlags().StringVar(&userID, "user", defaultUserID(), "User id for the conversation")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("chatarr {{.Version}}\n")
}

var userID string

func defaultUserID() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
