package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/WessleyAI/autospecs/engine/domain"
	"github.com/WessleyAI/autospecs/engine/specs"
)

var (
	titleColor = color.New(color.FgCyan, color.Bold)
	labelColor = color.New(color.FgYellow)
	winColor   = color.New(color.FgGreen, color.Bold)
	errColor   = color.New(color.FgRed)
	dimColor   = color.New(color.Faint)
)

type row struct {
	label string
	value func(domain.Spec) string
}

var specRows = []row{
	{"Year", func(s domain.Spec) string { return strconv.Itoa(s.Year) }},
	{"Engine", func(s domain.Spec) string { return s.EngineType }},
	{"Horsepower", func(s domain.Spec) string { return strconv.Itoa(s.Horsepower) + " hp" }},
	{"0-60 mph", func(s domain.Spec) string { return s.ZeroToSixty }},
	{"Fuel", func(s domain.Spec) string { return s.FuelType }},
	{"MPG", func(s domain.Spec) string { return orDash(s.MPG) }},
	{"Transmission", func(s domain.Spec) string { return orDash(s.Transmission) }},
	{"Drivetrain", func(s domain.Spec) string { return orDash(s.Drivetrain) }},
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func printSpec(w io.Writer, s domain.Spec) {
	titleColor.Fprintf(w, "%s (%d)\n", s.Name(), s.Year)
	for _, r := range specRows[1:] {
		labelColor.Fprintf(w, "  %-14s", r.label)
		fmt.Fprintln(w, r.value(s))
	}
	dimColor.Fprintf(w, "  %s\n", s.ImageURL)
}

func printFailure(w io.Writer, model, msg string) {
	errColor.Fprintf(w, "✗ %s: %s\n", model, msg)
}

func printComparison(w io.Writer, c comparison) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprint(tw, "\t")
	for _, s := range c.Cars {
		fmt.Fprintf(tw, "%s\t", s.Name())
	}
	fmt.Fprintln(tw)
	for _, r := range specRows {
		fmt.Fprintf(tw, "%s\t", r.label)
		for _, s := range c.Cars {
			fmt.Fprintf(tw, "%s\t", r.value(s))
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()

	// A single car has nothing to rank.
	if sum := c.Summary; len(c.Cars) > 1 {
		fmt.Fprintln(w)
		printWinner(w, "Most powerful", sum.MostPowerful, fmt.Sprintf("%d hp", sum.MostPowerful.Horsepower))
		printWinner(w, "Newest", sum.Newest, strconv.Itoa(sum.Newest.Year))
		if sum.FastestKnown {
			printWinner(w, "Quickest 0-60", sum.Fastest, sum.Fastest.ZeroToSixty)
		}
	}
	for _, term := range c.Skipped {
		dimColor.Fprintf(w, "skipped %q: already in the comparison\n", term)
	}
}

func printWinner(w io.Writer, label string, s domain.Spec, detail string) {
	labelColor.Fprintf(w, "%-15s", label+":")
	winColor.Fprint(w, s.Name())
	fmt.Fprintf(w, " (%s)\n", detail)
}

func printEvent(w io.Writer, ev specs.SearchEvent) {
	dimColor.Fprint(w, ev.At.Local().Format("15:04:05"), " ")
	fmt.Fprintf(w, "%-24q -> %s", ev.Term, ev.Spec.Name())
	src := winColor
	if ev.Source == specs.SourceCatalog {
		src = labelColor
	}
	src.Fprintf(w, " [%s", ev.Source)
	if ev.Reason != "" {
		src.Fprintf(w, ": %s", ev.Reason)
	}
	src.Fprint(w, "]")
	fmt.Fprintf(w, " %dms\n", ev.DurationMS)
}
