package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"multibox/internal/domain"
	"multibox/internal/services/message"
)

// recv: read an envelope JSON from stdin and decrypt the unit addressed to
// this device.
func recvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recv",
		Short: "Decrypt an envelope read from stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			if userID == "" {
				return fmt.Errorf("user id required (-u)")
			}
			var env domain.Envelope
			if err := json.NewDecoder(os.Stdin).Decode(&env); err != nil {
				return fmt.Errorf("read envelope: %w", err)
			}
			plaintext, err := wire.Messages.Decrypt(env)
			if message.IsNotForThisDevice(err) {
				fmt.Fprintln(os.Stderr, "this envelope was not addressed to this device")
				return err
			}
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", plaintext)
			return nil
		},
	}
}
