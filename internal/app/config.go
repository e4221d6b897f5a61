package app

import (
	"net/http"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home         string       // config directory, e.g. $HOME/.multibox
	DirectoryURL string       // directory base URL, e.g. http://127.0.0.1:8080
	UserID       string       // the local account id
	Passphrase   string       // protects the sealed key store
	HTTP         *http.Client // optional; defaults to http.DefaultClient
}

// fileConfig is the subset of Config readable from a YAML file. Secrets
// (the passphrase) are deliberately not file-configurable.
type fileConfig struct {
	Home         string `yaml:"home"`
	DirectoryURL string `yaml:"directoryUrl"`
	UserID       string `yaml:"userId"`
}

// LoadConfig merges an optional YAML config file into cfg. Values already
// set on cfg (usually from flags) win over file values. When path is empty
// the default location under the home directory is tried; a missing or
// unreadable file is not an error.
func LoadConfig(cfg Config, path string) Config {
	candidates := make([]string, 0, 2)
	if path != "" {
		candidates = append(candidates, path)
	} else if cfg.Home != "" {
		candidates = append(candidates, filepath.Join(cfg.Home, "config.yaml"))
	}

	for _, p := range candidates {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		var parsed fileConfig
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			continue
		}
		if cfg.Home == "" {
			cfg.Home = parsed.Home
		}
		if cfg.DirectoryURL == "" {
			cfg.DirectoryURL = parsed.DirectoryURL
		}
		if cfg.UserID == "" {
			cfg.UserID = parsed.UserID
		}
		break
	}
	return cfg
}
