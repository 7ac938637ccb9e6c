package cmd

import (
	"github.com/spf13/pflag"

	"github.com/kcctl/kcctl/internal/pkg/connect"
)

// GlobalSet holds the persistent flags of the root command.
func GlobalSet() *pflag.FlagSet {
	set := pflag.NewFlagSet("global", pflag.ExitOnError)
	set.String("config", "", "Path to the kcctl config file (default \"~/.kcctl\").")
	set.AddFlagSet(ContextSet())
	set.AddFlagSet(TimeoutSet())
	set.CountP("verbose", "v", "Increase verbosity (-v for warn, -vv for info, -vvv for debug, -vvvv for trace).")
	set.SortFlags = false
	return set
}

func ContextSet() *pflag.FlagSet {
	set := pflag.NewFlagSet("context state", pflag.ExitOnError)
	set.String("context", "", "Context to use instead of the current one.")
	set.SortFlags = false
	return set
}

func TimeoutSet() *pflag.FlagSet {
	set := pflag.NewFlagSet("timeout", pflag.ExitOnError)
	set.Duration("timeout", connect.DefaultTimeout, "Time to wait for each Kafka Connect request.")
	set.SortFlags = false
	return set
}

func CredentialsSet() *pflag.FlagSet {
	set := pflag.NewFlagSet("credentials", pflag.ExitOnError)
	set.String("username", "", "Username for HTTP basic authentication.")
	set.String("password", "", "Password for HTTP basic authentication.")
	set.SortFlags = false
	return set
}
