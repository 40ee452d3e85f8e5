// Package main provides rbstress, a tool that inserts and deletes random keys
// on independent trees and checks the red-black invariants as it goes.
package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	err := newRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rbstress",
		Short: "Stress the red-black tree index",
		Long: `rbstress inserts every key of a random permutation into a fresh index,
deletes them again in a different order and verifies the tree invariants
after every N mutations. Each worker owns one index.

Settings come from flags, RBSTRESS_* environment variables or --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(cmd.Flags())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			results, err := Run(ctx, cfg, newLogger(cfg, cmd))
			WriteReport(cmd.OutOrStdout(), results)

			return err
		},
	}

	registerFlags(cmd.Flags())

	return cmd
}

func newLogger(cfg *Config, cmd *cobra.Command) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}

	return log
}
