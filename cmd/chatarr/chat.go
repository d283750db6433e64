package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive conversation mode",
	Long: `Start an interactive conversation with the assistant.

Type messages and get replies; multi-step operations (picking a search
result, choosing seasons) continue across turns. Exit with "quit" or ctrl-d.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(_ *cobra.Command, _ []string) error {
	client := NewClient(serverURL)
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("chatarr - type a message, or \"quit\" to exit")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}

		reply, err := client.Send(userID, line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		printReply(reply)
	}
}
