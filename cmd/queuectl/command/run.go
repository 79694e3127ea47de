package command

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hanfei1991/queuelab/pkg/config"
	"github.com/hanfei1991/queuelab/pkg/errors"
	"github.com/hanfei1991/queuelab/pkg/session"
)

// Run executes a script of commands non-interactively.
type Run struct {
	script      string
	stopOnError bool
}

func (cmd Run) Command(ctx context.Context, cfg *config.Config) *cobra.Command {
	c := &cobra.Command{
		Use:   "run",
		Short: "run a script of commands, one per line",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return cmd.main(ctx, cfg, c)
		},
	}
	c.Flags().StringVarP(&cmd.script, "script", "f", "-", `script file, "-" reads stdin`)
	c.Flags().BoolVar(&cmd.stopOnError, "stop-on-error", false, "abort on the first failing command")
	return c
}

func (cmd *Run) main(ctx context.Context, cfg *config.Config, c *cobra.Command) error {
	content, err := readScript(cmd.script, c.InOrStdin())
	if err != nil {
		return err
	}

	s, err := session.New(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	return s.RunConsole(ctx, bytes.NewReader(content), c.OutOrStdout(), session.ConsoleOptions{
		AutoRender:  cfg.AutoRender,
		StopOnError: cmd.stopOnError,
	})
}

func readScript(path string, stdin io.Reader) ([]byte, error) {
	var (
		content []byte
		err     error
	)
	if path == "-" {
		content, err = io.ReadAll(stdin)
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrScriptRead, err, path)
	}
	return content, nil
}
