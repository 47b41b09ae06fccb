package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"cardcompare/internal/chat"
)

func newAskCmd() *cobra.Command {
	var baseURL string
	cmd := &cobra.Command{
		Use:   "ask [message]",
		Short: "Ask the card advisor of a running server over its websocket",
		Long: `Sends each message as one chat frame and prints the reply.
With no argument, reads one message per line from stdin until EOF.

Examples:
  cardctl ask "best travel cards with lounge access"
  cardctl ask --server https://cards.example.com < questions.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wsURL, err := websocketURL(baseURL, "/ws/chat")
			if err != nil {
				return err
			}
			conn, _, err := websocket.DefaultDialer.DialContext(cmd.Context(), wsURL, nil)
			if err != nil {
				return fmt.Errorf("connect %s: %w", wsURL, err)
			}
			defer conn.Close()

			if len(args) == 1 {
				return ask(conn, args[0], cmd.OutOrStdout())
			}
			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				line := strings.TrimSpace(sc.Text())
				if line == "" {
					continue
				}
				if err := ask(conn, line, cmd.OutOrStdout()); err != nil {
					return err
				}
			}
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return sc.Err()
		},
	}
	cmd.Flags().StringVar(&baseURL, "server", "http://localhost:8080", "server base URL")
	return cmd
}

type askReply struct {
	chat.Reply
	Error string `json:"error"`
}

func ask(conn *websocket.Conn, message string, out io.Writer) error {
	frame, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return err
	}
	if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
		return err
	}

	_, payload, err := conn.ReadMessage()
	if err != nil {
		return err
	}
	var reply askReply
	if err := json.Unmarshal(payload, &reply); err != nil {
		return fmt.Errorf("decode reply: %w", err)
	}
	if reply.Error != "" && reply.Text == "" {
		return errors.New(reply.Error)
	}

	fmt.Fprintln(out, reply.Text)
	for _, c := range reply.Cards {
		fmt.Fprintf(out, "  - %s (%s): %s\n", c.Name, c.Bank, c.AnnualFee)
	}
	return nil
}

func websocketURL(baseURL, path string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", fmt.Errorf("server URL %q has no host", baseURL)
	}
	scheme := "ws"
	if u.Scheme == "https" {
		scheme = "wss"
	}
	return (&url.URL{Scheme: scheme, Host: u.Host, Path: path}).String(), nil
}
