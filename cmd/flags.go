package cmd

import (
	"github.com/icarusdb/icdb/pkg/config"
	"github.com/spf13/cobra"
)

// flagOption converts a flag into a config option when the flag was
// given on the command line.
type flagOption func(cmd *cobra.Command) (config.Option, bool)

func stringFlag(name string, fn func(string) config.Option) flagOption {
	return func(cmd *cobra.Command) (config.Option, bool) {
		if !cmd.Flags().Changed(name) {
			return nil, false
		}
		s, _ := cmd.Flags().GetString(name)
		return fn(s), true
	}
}

func intFlag(name string, fn func(int) config.Option) flagOption {
	return func(cmd *cobra.Command) (config.Option, bool) {
		if !cmd.Flags().Changed(name) {
			return nil, false
		}
		i, _ := cmd.Flags().GetInt(name)
		return fn(i), true
	}
}

func boolFlag(name string, fn func(bool) config.Option) flagOption {
	return func(cmd *cobra.Command) (config.Option, bool) {
		if !cmd.Flags().Changed(name) {
			return nil, false
		}
		b, _ := cmd.Flags().GetBool(name)
		return fn(b), true
	}
}

// flagOptions collects options of all flags that were set.
func flagOptions(cmd *cobra.Command, flags ...flagOption) []config.Option {
	var res []config.Option
	for _, fn := range flags {
		if opt, ok := fn(cmd); ok {
			res = append(res, opt)
		}
	}
	return res
}
