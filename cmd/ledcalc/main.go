// Command ledcalc sizes the series resistor for an LED.
//
// With -supply, -vf, -current and -n all given it prints the report and
// exits; otherwise it prompts for the values on standard input.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/davecgh/go-spew/spew"
	"ledcalc/internal/console"
	"ledcalc/internal/led"
	"ledcalc/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("ledcalc", flag.ContinueOnError)
	flags.SetOutput(stderr)

	var in led.Input
	var seriesName, logLevel string
	var debug bool

	flags.Float64Var(&in.SupplyVoltage, "supply", 0, "Supply voltage (V)")
	flags.Float64Var(&in.ReferenceForwardVoltage, "vf", 0, "Forward voltage at 20 mA (V)")
	flags.Float64Var(&in.DesiredCurrentMA, "current", 0, "Desired current (mA)")
	flags.Float64Var(&in.LEDConstant, "n", 0, "LED constant factor (typical: 0.05-0.1 V)")
	flags.StringVar(&seriesName, "series", "", "Also print the next standard value from this series (E6|E12|E24|E48|E96)")
	flags.BoolVar(&debug, "debug", false, "Dump the full calculation to stderr")
	flags.StringVar(&logLevel, "log-level", "warn", "Log level (debug|info|warn|error)")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	logger := logging.NewStructuredLogger(stderr, level)

	session := &console.Session{
		In:     stdin,
		Out:    stdout,
		Logger: logger,
	}
	if seriesName != "" {
		series, err := led.ParseSeries(seriesName)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		session.Series = series
	}

	set := map[string]bool{}
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["supply"] && set["vf"] && set["current"] && set["n"] {
		err = session.Report(in)
	} else {
		in, err = session.Run(ctx)
	}

	if debug && in != (led.Input{}) {
		result, calcErr := led.Calculate(in)
		if calcErr != nil {
			spew.Fdump(stderr, calcErr)
		} else {
			spew.Fdump(stderr, result)
		}
	}

	if err != nil {
		return 1
	}
	return 0
}
