package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/five82/taqvim/internal/age"
	"github.com/five82/taqvim/internal/app"
	"github.com/five82/taqvim/internal/calendar"
	"github.com/five82/taqvim/internal/contacts"
	"github.com/five82/taqvim/internal/export"
	"github.com/five82/taqvim/internal/locale"
	"github.com/five82/taqvim/internal/logging"
	"github.com/five82/taqvim/internal/logtail"
	"github.com/five82/taqvim/internal/ui"
)

const plainWidth = 40

type calendarArgs struct {
	Year  int `validate:"omitempty,min=1206,max=1498"`
	Month int `validate:"omitempty,min=1,max=12"`
}

type convertFlags struct {
	From string `validate:"required,oneof=shamsi jalali solar sh gregorian miladi g lunar hijri qamari l"`
	Date string `validate:"required"`
}

type ageFlags struct {
	From  string `validate:"omitempty,oneof=shamsi jalali solar sh gregorian miladi g"`
	Date  string `validate:"required_without=VCard,excluded_with=VCard"`
	VCard string `validate:"omitempty,file"`
}

type logsFlags struct {
	Lines int    `validate:"min=0"`
	Level string `validate:"oneof=debug info warn error"`
}

type icsFlags struct {
	Year   int `validate:"omitempty,min=1206,max=1498"`
	Month  int `validate:"omitempty,min=1,max=12"`
	Output string
}

func newCalendarCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "calendar [year] [month]",
		Short: "Browse Shamsi months (prints one month when not on a terminal)",
		Args:  cobra.MaximumNArgs(2),
		RunE:  c.runCalendar,
	}
}

func (c *cli) runCalendar(cmd *cobra.Command, args []string) error {
	var in calendarArgs
	for i, arg := range args {
		n, err := strconv.Atoi(locale.ASCIIDigits(arg))
		if err != nil {
			return fmt.Errorf("invalid number %q", arg)
		}
		if i == 0 {
			in.Year = n
		} else {
			in.Month = n
		}
	}
	if in.Year != 0 && in.Month == 0 {
		in.Month = 1
	}
	if err := c.validate.Struct(in); err != nil {
		return err
	}

	opts := c.opts
	opts.Year, opts.Month = in.Year, in.Month

	if c.isTerminal() {
		return app.Run(cmd.Context(), opts)
	}

	env, err := c.env()
	if err != nil {
		return err
	}
	fmt.Fprintln(out(cmd), ui.RenderMonth(ui.Options{
		Localizer: env.Localizer,
		Clock:     env.Clock,
		Prefs:     env.Prefs,
		Year:      opts.Year,
		Month:     opts.Month,
	}, plainWidth))
	return nil
}

func newConvertCmd(c *cli) *cobra.Command {
	var f convertFlags
	cmd := &cobra.Command{
		Use:   "convert YYYY/MM/DD",
		Short: "Show a date in all three calendars",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f.Date = locale.ASCIIDigits(args[0])
			f.From = strings.ToLower(f.From)
			if err := c.validate.Struct(f); err != nil {
				return err
			}

			env, err := c.env()
			if err != nil {
				return err
			}
			sys, err := calendar.ParseSystem(f.From)
			if err != nil {
				return err
			}
			d, err := calendar.ParseDate(sys, f.Date)
			if err != nil {
				return err
			}
			t, err := calendar.Expand(d)
			if err != nil {
				return fmt.Errorf("convert %s: %w", d, err)
			}
			printTriple(out(cmd), env.Localizer, t)
			return nil
		},
	}
	cmd.Flags().StringVarP(&f.From, "from", "f", "shamsi", "calendar of the input date: shamsi, gregorian or lunar")
	return cmd
}

func newTodayCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today in all three calendars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := c.env()
			if err != nil {
				return err
			}
			printTriple(out(cmd), env.Localizer, calendar.FromTime(env.Clock.Now()))
			return nil
		},
	}
}

func newAgeCmd(c *cli) *cobra.Command {
	var f ageFlags
	cmd := &cobra.Command{
		Use:   "age [YYYY/MM/DD]",
		Short: "Compute an age from a birth date or the birthdays in a vCard file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				f.Date = locale.ASCIIDigits(args[0])
			}
			if err := c.validate.Struct(f); err != nil {
				return err
			}

			env, err := c.env()
			if err != nil {
				return err
			}
			if f.VCard != "" {
				return runVCardAges(cmd, env, f.VCard)
			}

			sys := calendar.Shamsi
			if f.From != "" {
				if sys, err = calendar.ParseSystem(f.From); err != nil {
					return err
				}
			}
			birth, err := calendar.ParseDate(sys, f.Date)
			if err != nil {
				return err
			}
			calc := age.Calculator{Clock: env.Clock}
			res, err := calc.Age(birth)
			if err != nil {
				return err
			}
			printAge(out(cmd), env.Localizer, res)
			return nil
		},
	}
	cmd.Flags().StringVarP(&f.From, "from", "f", "", "calendar of the birth date: shamsi (default) or gregorian")
	cmd.Flags().StringVar(&f.VCard, "vcard", "", "read birthdays from a vCard (.vcf) file")
	return cmd
}

func runVCardAges(cmd *cobra.Command, env *app.Env, path string) error {
	im := contacts.Importer{Clock: env.Clock, Logger: logging.WithComponent(env.Logger, "contacts")}
	report, err := im.ReadFile(cmd.Context(), path)
	if err != nil {
		return err
	}

	loc := env.Localizer
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Name", loc.Text(locale.MsgLabelShamsi), loc.Text(locale.MsgLabelGregorian), "Age")
	for _, e := range report.Entries {
		if e.Err != nil {
			t.Row(e.Name, "", loc.Date(e.Birth), e.Err.Error())
			continue
		}
		t.Row(e.Name, loc.Date(e.Age.Birth), loc.Date(e.Birth), formatAge(loc, e.Age))
	}
	fmt.Fprintln(out(cmd), t.Render())
	fmt.Fprintf(out(cmd), "%d cards, %d without birthday, %d unusable\n", report.Processed, report.NoBirth, report.Unusable)
	return nil
}

func newICSCmd(c *cli) *cobra.Command {
	var f icsFlags
	cmd := &cobra.Command{
		Use:   "ics",
		Short: "Export Shamsi dates as an iCalendar overlay",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.validate.Struct(f); err != nil {
				return err
			}
			env, err := c.env()
			if err != nil {
				return err
			}
			if f.Year == 0 {
				f.Year = calendar.FromTime(env.Clock.Now()).Shamsi.Year
			}
			opts := export.Options{Year: f.Year, Month: f.Month, Localizer: env.Localizer}

			if f.Output == "" || f.Output == "-" {
				return export.Write(out(cmd), opts)
			}
			data, err := export.Render(opts)
			if err != nil {
				return err
			}
			if err := os.WriteFile(f.Output, data, 0o644); err != nil {
				return fmt.Errorf("write ics: %w", err)
			}
			env.Logger.Info("wrote calendar", zap.String("path", f.Output), zap.Int("bytes", len(data)))
			return nil
		},
	}
	cmd.Flags().IntVar(&f.Year, "year", 0, "Shamsi year (default: current)")
	cmd.Flags().IntVar(&f.Month, "month", 0, "Shamsi month, 0 for the whole year")
	cmd.Flags().StringVarP(&f.Output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func newServeCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the ICS feed and the JSON API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Serve(cmd.Context(), c.opts)
		},
	}
	cmd.Flags().StringVar(&c.opts.Listen, "listen", "", "listen address (default from config)")
	return cmd
}

func newLogsCmd(c *cli) *cobra.Command {
	var f logsFlags
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the newest entries of the log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f.Level = strings.ToLower(f.Level)
			if err := c.validate.Struct(f); err != nil {
				return err
			}
			env, err := c.env()
			if err != nil {
				return err
			}
			level, err := zapcore.ParseLevel(f.Level)
			if err != nil {
				return err
			}
			entries, err := logtail.Tail(env.Config.LogFile, f.Lines, level)
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Fprintln(out(cmd), logtail.Colorize(e))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&f.Lines, "lines", "n", 50, "number of entries, 0 for all")
	cmd.Flags().StringVar(&f.Level, "level", "info", "minimum level: debug, info, warn or error")
	return cmd
}
