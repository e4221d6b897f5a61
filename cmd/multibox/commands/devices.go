package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"multibox/internal/domain"
)

// devices <user>: list every registered device for a user.
func devicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devices <user>",
		Short: "List a user's registered devices and key fingerprints",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := wire.Directory.ListDeviceKeys(cmd.Context(), domain.UserID(args[0]))
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("no devices registered")
				return nil
			}
			for _, e := range entries {
				fmt.Printf("%s  %s\n", e.DeviceID, e.PublicKeyHex)
			}
			return nil
		},
	}
}
