package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"multibox/internal/app"
)

var (
	home         string
	passphrase   string
	directoryURL string
	userID       string
	configPath   string

	wire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "multibox",
		Short: "Multi-device end-to-end encrypted messaging core",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".multibox")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			cfg := app.LoadConfig(app.Config{
				Home:         home,
				DirectoryURL: directoryURL,
				UserID:       userID,
				Passphrase:   passphrase,
			}, configPath)

			var err error
			wire, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.multibox)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the local key store")
	root.PersistentFlags().StringVar(&directoryURL, "directory", "", "directory base URL (e.g. http://127.0.0.1:8080)")
	root.PersistentFlags().StringVarP(&userID, "user", "u", "", "your user id")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yaml")

	root.AddCommand(initCmd(), fingerprintCmd(), devicesCmd(), sendCmd(), recvCmd())
	return root.Execute()
}
