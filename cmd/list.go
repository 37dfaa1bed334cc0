package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/timegear/timegear/zone"
)

// timezonesAll is every timezone key the selection accepts, used for
// listing and shell completion.
var timezonesAll = zone.All

// listAreas groups the known timezones by area, e.g. "America" ->
// ["Chicago", "New_York", ...]. Keys without an area, like "UTC", are
// skipped.
func listAreas() map[string][]string {
	return zone.Areas()
}

// printAreas prints the area names with their location counts.
func printAreas() error {
	areas := listAreas()

	names := make([]string, 0, len(areas))
	for name := range areas {
		names = append(names, name)
	}
	sort.Strings(names)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Area", "Locations"})
	for _, name := range names {
		t.AppendRow(table.Row{name, len(areas[name])})
	}
	t.Render()
	return nil
}

// printLocations prints the locations within a single area.
func printLocations(area string) error {
	locations, ok := listAreas()[area]
	if !ok {
		return fmt.Errorf("invalid area name: %s", area)
	}
	sort.Strings(locations)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{area})
	for _, loc := range locations {
		t.AppendRow(table.Row{loc})
	}
	t.Render()
	return nil
}

// printAllTimezones prints every known timezone key.
func printAllTimezones() error {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Timezone"})
	for _, tz := range timezonesAll {
		t.AppendRow(table.Row{tz})
	}
	t.Render()
	return nil
}

// NewListCmd creates and returns a new list command. Each call returns a
// fresh instance for test isolation.
func NewListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list available timezones",
		Long: `List the timezones accepted by the --timezone flag.

Examples:

  # List the timezone areas:
  $ timegear list --areas

  # List the locations within an area:
  $ timegear list --locations America

  # List every timezone:
  $ timegear list --timezones`,
		Args: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("locations") {
				area, _ := cmd.Flags().GetString("locations")
				if _, ok := listAreas()[area]; !ok {
					areaNames := make([]string, 0, len(listAreas()))
					for name := range listAreas() {
						areaNames = append(areaNames, name)
					}
					sort.Strings(areaNames)
					return fmt.Errorf("invalid area name: %s, expected one of: %s", area, strings.Join(areaNames, ", "))
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if areasEnabled, _ := cmd.Flags().GetBool("areas"); areasEnabled {
				return printAreas()
			}
			if cmd.Flags().Changed("locations") {
				area, _ := cmd.Flags().GetString("locations")
				return printLocations(area)
			}
			if timezonesEnabled, _ := cmd.Flags().GetBool("timezones"); timezonesEnabled {
				return printAllTimezones()
			}
			return printAreas()
		},
	}

	listCmd.Flags().BoolP("areas", "a", false, "list the timezone areas")
	listCmd.Flags().StringP("locations", "l", "", "``list the locations within an area, like America")
	listCmd.Flags().BoolP("timezones", "t", false, "list every timezone")

	return listCmd
}

func init() {
	rootCmd.AddCommand(NewListCmd())
}
