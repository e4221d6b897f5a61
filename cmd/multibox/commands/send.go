package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"multibox/internal/domain"
)

// send <recipient> <message>: encrypt for every device of the recipient and
// of the sender, printing the envelope JSON to stdout.
func sendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send <recipient> <message>",
		Short: "Encrypt a message for every device of a recipient",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			if userID == "" {
				return fmt.Errorf("user id required (-u)")
			}
			env, err := wire.Messages.EncryptForRecipient(
				cmd.Context(), []byte(args[1]), domain.UserID(args[0]),
			)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(env)
		},
	}
}
