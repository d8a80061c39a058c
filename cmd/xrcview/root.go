// cmd/xrcview/root.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"xrcform/binding"
	"xrcform/config"
	"xrcform/logging"
	"xrcform/resource"
)

// settings is the merged view of the config file and the command line.
// Flags win over the file.
type settings struct {
	configPath string
	logLevel   string
	prefix     string
	file       config.Config
}

func buildRootCmd() *cobra.Command { return buildRootCmdWith(&settings{}) }

func buildRootCmdWith(s *settings) *cobra.Command {
	root := &cobra.Command{
		Use:           "xrcview",
		Short:         "Inspect, check and preview xrcform resource documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&s.configPath, "config", "", "Config file (.yaml, .yml, .json or .toml)")
	root.PersistentFlags().StringVar(&s.logLevel, "log-level", "", "Log level: trace|debug|info|warn|error|off (defaults "+logging.EnvLevel+" or info)")
	root.PersistentFlags().StringVar(&s.prefix, "prefix", "", "Handler name prefix (default \""+binding.DefaultPrefix+"\")")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		logging.SetOutput(cmd.ErrOrStderr())
		if s.configPath != "" {
			cfg, err := config.Load(s.configPath)
			if err != nil {
				return err
			}
			s.file = cfg
			if s.logLevel == "" {
				s.logLevel = cfg.LogLevel
			}
			if s.prefix == "" {
				s.prefix = cfg.Prefix
			}
		}
		if s.logLevel == "" {
			s.logLevel = os.Getenv(logging.EnvLevel)
		}
		logging.SetLevel(s.logLevel)
		return nil
	}

	root.AddCommand(
		newListCmd(s),
		newCheckCmd(s),
		newParseCmd(s),
		newPreviewCmd(s),
	)
	return root
}

// loadStore reads files into a fresh store, falling back to the config
// file's resources when none are given.
func (s *settings) loadStore(files []string) (*resource.Store, error) {
	if len(files) == 0 {
		files = s.file.Resources
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no resource files given")
	}
	store := resource.NewStore()
	for _, f := range files {
		st, err := os.Stat(f)
		if err == nil && st.IsDir() {
			err = store.LoadDir(f)
		} else {
			err = store.Load(f)
		}
		if err != nil {
			return nil, err
		}
	}
	return store, nil
}
