package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/five82/taqvim/internal/age"
	"github.com/five82/taqvim/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	c := newCLI(os.Stdout)
	defer c.close()

	root := newRootCmd(c)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "taqvim: %v\n", err)
		return 1
	}
	return 0
}

// cli carries the global flags and the lazily built environment shared by
// the subcommands.
type cli struct {
	opts     app.Options
	validate *validator.Validate

	// Overridable in tests.
	clock      age.Clock
	isTerminal func() bool

	envCache *app.Env
}

func newCLI(stdout *os.File) *cli {
	return &cli{
		validate: validator.New(),
		isTerminal: func() bool {
			return term.IsTerminal(int(stdout.Fd()))
		},
	}
}

// env loads config, prefs and the stderr logger once per invocation.
func (c *cli) env() (*app.Env, error) {
	if c.envCache != nil {
		return c.envCache, nil
	}
	env, err := app.Setup(c.opts, false)
	if err != nil {
		return nil, err
	}
	if c.clock != nil {
		env.Clock = c.clock
	}
	c.envCache = env
	return env, nil
}

func (c *cli) close() {
	if c.envCache != nil {
		c.envCache.Close()
		c.envCache = nil
	}
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "taqvim",
		Short: "Shamsi, Gregorian and Lunar calendar converter",
		Long: `taqvim converts dates between the Shamsi (Solar Hijri), Gregorian and
Lunar Hijri calendars, computes ages, and browses Shamsi months.

Run without arguments to open the interactive month browser.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			c.close()
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCalendar(cmd, nil)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.opts.ConfigPath, "config", "", "config file (default ~/.config/taqvim/config.toml)")
	flags.StringVar(&c.opts.PrefsPath, "prefs", "", "prefs file (default from config)")
	flags.StringVar(&c.opts.Language, "lang", "", "display language: en or fa")
	flags.BoolVarP(&c.opts.Verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newCalendarCmd(c),
		newConvertCmd(c),
		newAgeCmd(c),
		newTodayCmd(c),
		newICSCmd(c),
		newServeCmd(c),
		newLogsCmd(c),
	)
	return root
}

// out is the command's output writer.
func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
