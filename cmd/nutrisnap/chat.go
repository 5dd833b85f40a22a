package nutrisnap

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Alok-2331/NutriSnap/internal/model"
	"github.com/Alok-2331/NutriSnap/internal/service"
	"github.com/Alok-2331/NutriSnap/internal/store"
)

var chatCmd = &cobra.Command{
	Use:   "chat MESSAGE...",
	Short: "Chat with the AI nutrition assistant",
	Long:  "Sends a message to the AI nutrition assistant and streams the reply. The conversation is persisted; see 'nutrisnap chat history'.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		return withStore(func(_ *sql.DB, st *store.Store) error {
			if err := requireOnboarded(st); err != nil {
				return err
			}
			client, err := newGateway(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			reply, streamErr := service.SendChatMessage(cmd.Context(), st, client, text, func(chunk string) error {
				_, err := fmt.Fprint(out, chunk)
				return err
			})
			if streamErr != nil {
				// The fallback turn is already in the history.
				fmt.Fprintln(out, reply.Text)
				fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render("Connection problem - the assistant could not finish its reply."))
				return nil
			}
			fmt.Fprintln(out)
			return nil
		})
	},
}

var chatHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the conversation so far",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(sqldb *sql.DB, st *store.Store) error {
			history := st.State().ChatHistory
			if len(history) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No conversation yet. Start one with 'nutrisnap chat MESSAGE'.")
				return nil
			}
			out := cmd.OutOrStdout()
			for _, msg := range history {
				when := time.UnixMilli(msg.Timestamp).Format("Jan 2 15:04")
				if msg.Role == model.RoleUser {
					fmt.Fprintf(out, "%s\n%s\n\n", dimStyle.Render("You · "+when), msg.Text)
					continue
				}
				fmt.Fprintf(out, "%s\n%s\n", dimStyle.Render("Assistant · "+when), renderMarkdown(sqldb, msg.Text))
			}
			return nil
		})
	},
}

var chatClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the conversation history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(_ *sql.DB, st *store.Store) error {
			if err := st.ClearChatHistory(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Chat history cleared.")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.AddCommand(chatHistoryCmd, chatClearCmd)
}
