package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hanfei1991/queuelab/cmd/queuectl/command"
	"github.com/hanfei1991/queuelab/pkg/config"
	"github.com/hanfei1991/queuelab/pkg/errors"
	"github.com/hanfei1991/queuelab/pkg/logutil"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.NewConfig()
	root := &cobra.Command{
		Use:           "queuectl",
		Short:         "Play with queues, deques and linked lists of integers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Load(cmd.Flags()); err != nil {
				return err
			}
			return logutil.InitLogger(cfg)
		},
	}
	cfg.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		command.Repl{}.Command(ctx, cfg),
		command.Run{}.Command(ctx, cfg),
		command.Compare{}.Command(ctx, cfg),
		command.PrintConfig{}.Command(cfg),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "queuectl:", errors.Message(err))
		cancel()
		os.Exit(1)
	}
}
