package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const EnvPrefix = "kcctl"

var boundFlags = []string{"config", "context", "timeout"}

// BindGlobalFlags lets KCCTL_CONFIG, KCCTL_CONTEXT and KCCTL_TIMEOUT stand in for the root's persistent flags.
// A flag given on the command line wins over the environment.
func BindGlobalFlags(root *cobra.Command) error {
	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()
	for _, name := range boundFlags {
		if err := viper.BindPFlag(name, root.PersistentFlags().Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}
