package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"multibox/internal/crypto"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create this device's key pair and publish it to the directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			if userID == "" {
				return fmt.Errorf("user id required (-u)")
			}
			deviceID, err := wire.Devices.CurrentDeviceID()
			if err != nil {
				return err
			}
			pair, err := wire.Keys.GetOrCreateKeyPair(cmd.Context(), userIDTyped())
			if err != nil {
				return err
			}
			fmt.Printf("Device registered.\nDevice ID: %s\nFingerprint: %s\n",
				deviceID, crypto.Fingerprint(pair.Public.Slice()))
			return nil
		},
	}
}
