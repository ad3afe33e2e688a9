// Command tzconv converts a wall-clock date-time from one zone to
// another, with explicit control over how ambiguous and skipped local
// times resolve.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mhartig/tzresolve/system"
	"github.com/mhartig/tzresolve/tzdb"
	"github.com/mhartig/tzresolve/tzone"
)

const layout = "2006-01-02 15:04:05"

func main() {
	var (
		fromFlag      string
		toFlag        string
		ambiguousFlag string
		gapFlag       string
	)

	root := &cobra.Command{
		Use:           "tzconv \"2006-01-02 15:04:05\"",
		Short:         "Convert a wall-clock time between timezones",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(ambiguousFlag, gapFlag)
			if err != nil {
				return err
			}
			from, err := lookupOrSystem(fromFlag)
			if err != nil {
				return err
			}
			to, err := lookupOrSystem(toFlag)
			if err != nil {
				return err
			}

			naive, err := time.Parse(layout, args[0])
			if err != nil {
				return fmt.Errorf("parsing time: %w", err)
			}

			zoned, err := tzone.FromLocal(naive, from, opts)
			if err != nil {
				return fmt.Errorf("interpreting %q in %s: %w", args[0], from.Name(), err)
			}
			if res := from.OffsetsAtLocal(tzone.NaiveUnix(naive)); res.Kind == tzone.AmbiguousTime {
				fmt.Fprintf(os.Stderr, "note: %q is ambiguous in %s (%s or %s)\n",
					args[0], from.Name(), res.First, res.Second)
			}

			fmt.Println(zoned.In(to))
			return nil
		},
	}

	root.Flags().StringVar(&fromFlag, "from", "", "source zone name (default: system zone)")
	root.Flags().StringVar(&toFlag, "to", "", "target zone name (default: system zone)")
	root.Flags().StringVar(&ambiguousFlag, "ambiguous", "earliest", "policy for repeated local times: earliest or latest")
	root.Flags().StringVar(&gapFlag, "gap", "reject", "policy for skipped local times: reject or shift")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tzconv:", err)
		os.Exit(1)
	}
}

func resolveOptions(ambiguous, gap string) (tzone.ResolveOptions, error) {
	var opts tzone.ResolveOptions
	switch ambiguous {
	case "earliest":
		opts.Ambiguous = tzone.EarliestInstant
	case "latest":
		opts.Ambiguous = tzone.LatestInstant
	default:
		return opts, fmt.Errorf("unknown --ambiguous policy %q", ambiguous)
	}
	switch gap {
	case "reject":
		opts.Gap = tzone.GapReject
	case "shift":
		opts.Gap = tzone.GapShiftForward
	default:
		return opts, fmt.Errorf("unknown --gap policy %q", gap)
	}
	return opts, nil
}

func lookupOrSystem(name string) (*tzone.Zone, error) {
	if name == "" {
		sys, ok := system.ZoneName()
		if !ok {
			return nil, fmt.Errorf("system timezone could not be determined, pass a zone name")
		}
		name = sys
	}
	z, ok := tzdb.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown zone %q", name)
	}
	return z, nil
}
