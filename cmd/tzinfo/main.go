// Command tzinfo inspects the compiled zone registry: it lists known
// zones and shows the offsets of a single zone.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mhartig/tzresolve/tzdb"
	"github.com/mhartig/tzresolve/tzone"
)

func main() {
	root := &cobra.Command{
		Use:           "tzinfo",
		Short:         "Inspect timezone rule data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all known zone names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range tzdb.Names() {
				fmt.Println(name)
			}
			return nil
		},
	}

	var atFlag string
	show := &cobra.Command{
		Use:   "show <zone>",
		Short: "Show a zone's offset at an instant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, ok := tzdb.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown zone %q", args[0])
			}
			at := time.Now()
			if atFlag != "" {
				var err error
				at, err = time.Parse(time.RFC3339, atFlag)
				if err != nil {
					return fmt.Errorf("parsing --at: %w", err)
				}
			}
			printZone(z, at)
			return nil
		},
	}
	show.Flags().StringVar(&atFlag, "at", "", "instant to evaluate (RFC3339), defaults to now")

	root.AddCommand(list, show)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tzinfo:", err)
		os.Exit(1)
	}
}

func printZone(z *tzone.Zone, at time.Time) {
	fmt.Println("Zone    ", z.Name())
	fmt.Println("At      ", at.UTC().Format(time.RFC3339))
	fmt.Println("Offset  ", z.OffsetAt(at.Unix()))
	fmt.Println("Standard", z.StandardOffset())
	fmt.Println("Local   ", tzone.ToZone(at, z).Format("2006-01-02 15:04:05 -07:00"))
}
