package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"multibox/internal/crypto"
	"multibox/internal/domain"
)

// userIDTyped returns the --user flag as a domain type.
func userIDTyped() domain.UserID { return domain.UserID(userID) }

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Show the fingerprint of this device's public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			priv, err := wire.Keys.LocalSecretKey(userIDTyped())
			if err != nil {
				return err
			}
			pub, err := crypto.PublicFromSecret(priv)
			if err != nil {
				return err
			}
			fmt.Println(crypto.Fingerprint(pub.Slice()))
			return nil
		},
	}
}
