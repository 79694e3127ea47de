package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hanfei1991/queuelab/pkg/config"
)

// PrintConfig prints the effective or the sample configuration.
type PrintConfig struct {
	sample bool
}

func (cmd PrintConfig) Command(cfg *config.Config) *cobra.Command {
	c := &cobra.Command{
		Use:   "print-config",
		Short: "print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if cmd.sample {
				fmt.Fprint(c.OutOrStdout(), config.SampleConfig)
				return nil
			}
			out, err := cfg.Toml()
			if err != nil {
				return err
			}
			fmt.Fprint(c.OutOrStdout(), out)
			return nil
		},
	}
	c.Flags().BoolVar(&cmd.sample, "sample", false, "print a sample config file instead")
	return c
}
