package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hanfei1991/queuelab/pkg/compare"
	"github.com/hanfei1991/queuelab/pkg/config"
	"github.com/hanfei1991/queuelab/pkg/queue"
)

// Compare runs one script against several queue kinds and reports where
// they behave differently.
type Compare struct {
	script string
	kinds  []string
}

func (cmd Compare) Command(ctx context.Context, cfg *config.Config) *cobra.Command {
	c := &cobra.Command{
		Use:   "compare",
		Short: "compare queue kinds on the same script",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return cmd.main(ctx, cfg, c)
		},
	}
	c.Flags().StringVarP(&cmd.script, "script", "f", "-", `script file, "-" reads stdin`)
	c.Flags().StringSliceVar(&cmd.kinds, "kinds", []string{string(queue.KindSimple), string(queue.KindStacks)},
		"queue kinds to compare, the first one is the baseline")
	return c
}

func (cmd *Compare) main(ctx context.Context, cfg *config.Config, c *cobra.Command) error {
	kinds := make([]queue.Kind, 0, len(cmd.kinds))
	for _, name := range cmd.kinds {
		kind, err := queue.ParseKind(name)
		if err != nil {
			return err
		}
		kinds = append(kinds, kind)
	}

	content, err := readScript(cmd.script, c.InOrStdin())
	if err != nil {
		return err
	}

	report, err := compare.Run(ctx, cfg, strings.Split(string(content), "\n"), kinds)
	if err != nil {
		return err
	}

	out := c.OutOrStdout()
	if report.Equivalent() {
		fmt.Fprintf(out, "%d kinds behave the same on %d steps\n", len(kinds), len(report.Transcripts[0].Steps))
		return nil
	}
	for _, d := range report.Divergences {
		fmt.Fprintln(out, d.String())
	}
	return nil
}
