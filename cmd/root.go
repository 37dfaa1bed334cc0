package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/timegear/timegear/logger"
	"github.com/timegear/timegear/store"
	"github.com/timegear/timegear/zone"
)

var (
	printEnabled bool
	resetEnabled bool
	timezones    []string
	v            = viper.New()
	l            = logger.GetLogger()
)

// initializeConfig wires the command's flags to TIMEGEAR_* environment
// variables, so e.g. --print can be forced with TIMEGEAR_PRINT=true.
func initializeConfig(cmd *cobra.Command) error {
	verboseCount, _ := cmd.Flags().GetCount("verbose")
	logger.SetLogLevel(verboseCount)

	v.SetEnvPrefix("TIMEGEAR")

	// Environment variables can't have dashes in them, so bind them to
	// their equivalent keys with underscores.
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	bindFlags(cmd, v)

	return nil
}

// bindFlags applies viper values to any flag the user did not set
// explicitly. Array values are fed to the flag one element at a time.
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		l.Debug().Str("flag", f.Name).Msg("binding flag to viper config:")
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if arr, ok := val.([]interface{}); ok {
				for _, item := range arr {
					if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", item)); err != nil {
						l.Error().Str("viper", err.Error()).Send()
					}
				}
			} else {
				if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
					l.Error().Str("viper", err.Error()).Send()
				}
			}
		}
	})
}

// deduplicateSlice removes duplicate elements from a string slice,
// keeping the last occurrence of each value.
func deduplicateSlice(s []string) []string {
	var result []string
	for i, v := range s {
		exists := false
		for j := i + 1; j < len(s); j++ {
			if s[j] == v {
				exists = true
				break
			}
		}
		if !exists {
			result = append(result, v)
		}
	}
	return result
}

// descriptorFor resolves a timezone key to a display descriptor. Keys
// present in the curated catalog keep their city name and offset label;
// anything else falls back to the raw IANA key.
func descriptorFor(zoneKey string) (zone.Descriptor, error) {
	if d, ok := zone.ByZone(zoneKey); ok {
		return d, nil
	}
	d := zone.Descriptor{Name: zoneKey, Zone: zoneKey}
	if _, err := d.Location(); err != nil {
		return zone.Descriptor{}, err
	}
	return d, nil
}

// mergeZones appends the named zones to the selection, skipping any
// already present.
func mergeZones(selection []zone.Descriptor, zoneKeys []string) ([]zone.Descriptor, error) {
	for _, key := range zoneKeys {
		d, err := descriptorFor(key)
		if err != nil {
			return nil, err
		}
		selection = zone.Add(selection, d)
	}
	return selection, nil
}

// printTimeTable renders the selection as a static table at offset zero.
func printTimeTable(selection []zone.Descriptor, ref time.Time) error {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.Style().Options.SeparateRows = true
	t.Style().Title.Align = text.AlignCenter
	t.SetTitle("Current Local Time: %s", ref.Format("Monday, January 2, 2006 3:04:05 PM MST"))
	t.AppendHeader(table.Row{"City", "Time", "Date", "Day", "Offset"})

	for _, d := range selection {
		loc, err := d.Location()
		if err != nil {
			return err
		}
		r := zone.Render(ref, 0, loc)
		daytime := "night"
		if r.Daytime {
			daytime = "day"
		}
		t.AppendRow(table.Row{d.Name, r.Clock + " " + r.Meridiem, r.Date, daytime, d.OffsetLabel})
	}

	t.Render()
	return nil
}

var rootCmd = &cobra.Command{
	Use:     "timegear",
	Version: "v0.3.0",
	Short:   "drag-to-scrub world clock for your terminal",
	Long: `timegear shows the current time across multiple cities and lets you scrub
all of them at once by dragging a time gear: click and drag the ruler under
the clocks (or use the arrow keys) and every city shifts together in
15-minute notches, so you can answer "what time is it there when it's 3pm
here" without arithmetic.

Your city selection persists between sessions:

  - Linux/Mac: $HOME/.config/timegear.json
  - Windows: %APPDATA%\timegear.json

Examples:

  # Open the interactive clock with your saved cities:
  $ timegear

  # Add cities to the selection before opening:
  $ timegear --timezone America/New_York --timezone Asia/Tokyo

  # Print a one-shot table instead of the interactive view:
  $ timegear --print

  # Discard the saved selection and start over with the defaults:
  $ timegear --reset`,
	Args: func(cmd *cobra.Command, args []string) error {
		timezones = deduplicateSlice(timezones)
		for _, tz := range timezones {
			if _, err := descriptorFor(tz); err != nil {
				return err
			}
		}
		return nil
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.New()
		if err != nil {
			return err
		}

		if resetEnabled {
			if err := s.Save(zone.Defaults()); err != nil {
				return err
			}
			l.Info().Str("path", s.Path()).Msg("selection reset to defaults")
		}

		selection := s.Load()
		selection, err = mergeZones(selection, timezones)
		if err != nil {
			return err
		}
		if len(timezones) > 0 {
			if err := s.Save(selection); err != nil {
				return err
			}
		}

		if printEnabled {
			return printTimeTable(selection, time.Now())
		}

		return runClock(s, selection)
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate(`{{printf "timegear %s\n" .Version}}`)
	rootCmd.Flags().BoolVarP(&printEnabled, "print", "p", false, "print a static time table instead of opening the interactive clock")
	rootCmd.Flags().BoolVarP(&resetEnabled, "reset", "r", false, "replace the saved city selection with the default set")
	rootCmd.PersistentFlags().CountP("verbose", "v", "``increase logging verbosity, 1=warn, 2=info, 3=debug, 4=trace")
	rootCmd.Flags().StringArrayVarP(&timezones, "timezone", "z", []string{}, "``timezone to add to the selection, like America/New_York. Can be used multiple times.")
	err := rootCmd.RegisterFlagCompletionFunc("timezone", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return timezonesAll, cobra.ShellCompDirectiveDefault
	})
	if err != nil {
		l.Error().Err(err).Send()
	}
}
