package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"promptmail/internal/assets"
	"promptmail/internal/config"
	"promptmail/internal/models"
	"promptmail/internal/services"
	"promptmail/internal/ui/cli"
	"promptmail/internal/ui/tui"
	"promptmail/internal/utils"
)

func newRootCmd() *cobra.Command {
	v := config.NewViper()

	rootCmd := &cobra.Command{
		Use:   "promptmail",
		Short: "Send a prompt to Gemini, show the answer and mail the exchange",
		Long: `promptmail forwards a prompt to the Gemini API, displays the response
and mails the prompt and response to a fixed recipient over Gmail SMTP.

Without a subcommand the desktop window is opened.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// .env is optional; variables already in the environment win.
			_, _ = utils.LoadEnv()
			return configure(v, cmd)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			env, err := bootstrap(v, bootstrapOptions{consoleLogs: true})
			if err != nil {
				return err
			}
			defer env.Close()
			return runDesktop(env)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "path to a promptmail.yaml config file")
	flags.String("settings", "", "path to the settings document (config.json)")
	flags.String("log-level", "", "log level (trace, debug, info, warn, error)")
	flags.String("log-format", "", "log format (console, json)")
	flags.String("log-file", "", "also write logs to this rolling file")

	rootCmd.AddCommand(newTUICmd(v), newCLICmd(v), newHistoryCmd(v), newInitConfigCmd())
	return rootCmd
}

// configure points v at an explicit config file and binds the persistent
// flags that were set.
func configure(v *viper.Viper, cmd *cobra.Command) error {
	flags := cmd.Flags()
	if path, _ := flags.GetString("config"); path != "" {
		v.SetConfigFile(path)
	}
	bindings := map[string]string{
		"settings.path": "settings",
		"log.level":     "log-level",
		"log.format":    "log-format",
		"log.file":      "log-file",
	}
	for key, name := range bindings {
		if f := flags.Lookup(name); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}
	return nil
}

func newTUICmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the full-screen terminal interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := bootstrap(v, bootstrapOptions{consoleLogs: false})
			if err != nil {
				return err
			}
			defer env.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			err = tui.Run(ctx, tui.Options{
				Settings:  env.services.Settings,
				Submitter: env.services.Submitter,
				Logger:    env.log,
			})
			env.services.Submitter.Wait()
			return err
		},
	}
}

func newCLICmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "cli",
		Short: "Run the line-mode terminal loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := bootstrap(v, bootstrapOptions{consoleLogs: true})
			if err != nil {
				return err
			}
			defer env.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return cli.Run(ctx, cli.Options{
				Settings:   env.services.Settings,
				Exchange:   env.services.Exchange,
				In:         cmd.InOrStdin(),
				Out:        cmd.OutOrStdout(),
				ReadSecret: cli.StdinSecretReader(),
				Logger:     env.log,
			})
		},
	}
}

func newHistoryCmd(v *viper.Viper) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent deliveries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := bootstrap(v, bootstrapOptions{consoleLogs: true})
			if err != nil {
				return err
			}
			defer env.Close()

			deliveries, err := env.services.History.Recent(cmd.Context(), limit)
			if errors.Is(err, services.ErrHistoryDisabled) {
				return errors.New("delivery history is disabled or could not be opened")
			}
			if err != nil {
				return err
			}
			return printDeliveries(cmd.OutOrStdout(), deliveries)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", services.DefaultHistoryLimit, "number of deliveries to show")
	return cmd
}

func newInitConfigCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "Write an example promptmail.yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "promptmail.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				}
			}
			if err := os.WriteFile(path, assets.ExampleConfig, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

func printDeliveries(out io.Writer, deliveries []models.Delivery) error {
	if len(deliveries) == 0 {
		_, err := fmt.Fprintln(out, "No deliveries recorded yet.")
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tRECIPIENT\tOUTCOME\tDURATION\tSTATUS")
	for _, d := range deliveries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			d.CreatedAt.Local().Format(time.DateTime),
			d.Recipient,
			d.Category,
			(time.Duration(d.DurationMs) * time.Millisecond).String(),
			d.Status,
		)
	}
	return tw.Flush()
}
