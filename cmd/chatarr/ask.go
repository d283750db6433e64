package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <message>",
	Short: "Send one message to the assistant",
	Long: `Send one message to the assistant and print the reply.

Examples:
  chatarr ask "download the matrix"
  chatarr ask "delete season 1 of breaking bad"
  chatarr ask "what's downloading right now?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(_ *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	reply, err := client.Send(userID, strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("chat failed: %w", err)
	}
	printReply(reply)
	return nil
}

func printReply(reply *ChatReply) {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(reply)
		return
	}
	for _, m := range reply.Messages {
		fmt.Println(m.Content)
	}
	for _, img := range reply.Images {
		fmt.Printf("[image] %s\n", img)
	}
}
