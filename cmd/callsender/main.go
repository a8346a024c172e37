package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/rikikudohust-thesis/callsender/internal/pkg/builder"
	"github.com/rikikudohust-thesis/callsender/internal/pkg/model"
	appctx "github.com/rikikudohust-thesis/callsender/pkg/context"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		opts    builder.Options
		envFile string
	)

	cmd := &cobra.Command{
		Use:           "callsender",
		Short:         "Sign and send the contract calls of a calls file, one at a time",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), envFile, opts)
		},
	}

	cmd.Flags().StringVar(&opts.CallsFile, "calls", model.DefaultCallsFile, "file holding the \"calls\" list")
	cmd.Flags().StringVar(&envFile, "env-file", model.DefaultEnvFile, "dotenv file loaded before reading the environment")
	return cmd
}

func run(ctx context.Context, envFile string, opts builder.Options) error {
	// before the logger, so CONTEXT_LOG_LEVEL can come from the file too
	envErr := builder.LoadEnvFile(envFile)
	log := appctx.Logger()
	defer appctx.Close()
	if envErr != nil {
		log.Errorf("failed to load %s: %v", envFile, envErr)
		return envErr
	}

	sender, err := builder.NewSender(ctx, opts, log)
	if err != nil {
		log.Errorf("An error occurred: %v", err)
		return err
	}
	defer sender.Close()

	if err := sender.Run(ctx); err != nil {
		log.Errorf("An error occurred: %v", err)
		return err
	}
	return nil
}
