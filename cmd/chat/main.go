// chat is a terminal stand-in for the site's chat widget: it talks to the
// proxy at /api/chat and renders the same canned fallbacks the widget
// shows when the proxy fails.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"portfolio-backend/internal/chatclient"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var serverURL string

	root := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the portfolio assistant from the terminal",
	}
	root.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "portfolio backend base URL")

	ask := &cobra.Command{
		Use:   "ask [message]",
		Short: "Send one message and print the reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := chatclient.New(serverURL)
			fmt.Println(client.Ask(cmd.Context(), strings.Join(args, " ")))
			return nil
		},
	}

	repl := &cobra.Command{
		Use:   "repl",
		Short: "Interactive conversation loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := chatclient.New(serverURL)
			fmt.Println(chatclient.WelcomeMessage)

			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					return scanner.Err()
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					return nil
				}
				fmt.Println(client.Ask(cmd.Context(), line))
			}
		},
	}

	root.AddCommand(ask, repl)
	return root
}
