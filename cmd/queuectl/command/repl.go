package command

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hanfei1991/queuelab/pkg/config"
	"github.com/hanfei1991/queuelab/pkg/session"
)

const prompt = "queuectl> "

// Repl runs an interactive session on stdin.
type Repl struct{}

func (cmd Repl) Command(ctx context.Context, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return cmd.main(ctx, cfg, c)
		},
	}
}

func (cmd Repl) main(ctx context.Context, cfg *config.Config, c *cobra.Command) error {
	s, err := session.New(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	opts := session.ConsoleOptions{AutoRender: cfg.AutoRender}
	if f, ok := c.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		opts.Prompt = prompt
		fmt.Fprintf(c.OutOrStdout(), "session %s, type \"help\" for commands\n", s.ID())
	}
	return s.RunConsole(ctx, c.InOrStdin(), c.OutOrStdout(), opts)
}
