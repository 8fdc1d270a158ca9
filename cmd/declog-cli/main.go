package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davidahmann/declog/internal/analytics"
	"github.com/davidahmann/declog/internal/config"
	"github.com/davidahmann/declog/internal/render"
	"github.com/davidahmann/declog/internal/store"
	"github.com/davidahmann/declog/pkg/types"
)

func main() {
	exitFn(run(os.Args, os.Stdout, os.Stderr))
}

var exitFn = os.Exit

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	if len(args) < 2 {
		usage(stderr)
		return 2
	}

	switch args[1] {
	case "dashboard":
		return handleDashboard(args[2:], stdout, stderr)
	case "summary":
		return handleSection(args[2:], stdout, stderr, sectionSummary)
	case "stars":
		return handleSection(args[2:], stdout, stderr, sectionStars)
	case "owners":
		return handleSection(args[2:], stdout, stderr, sectionOwners)
	case "inputs":
		return handleSection(args[2:], stdout, stderr, sectionInputs)
	default:
		usage(stderr)
		return 2
	}
}

type section int

const (
	sectionSummary section = iota
	sectionStars
	sectionOwners
	sectionInputs
)

// multiFlag collects repeated flag values.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

type options struct {
	cfg      config.Config
	criteria analytics.Criteria
	jsonOut  bool
}

func parseOptions(name string, args []string, stderr io.Writer) (options, bool) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", envOrDefault("DECLOG_CONFIG", ""), "optional declog.yaml path")
	records := fs.String("records", "", "decision log path (overrides config)")
	jsonOut := fs.Bool("json", false, "emit JSON instead of text")
	barWidth := fs.Int("bar-width", 0, "chart bar width (overrides config)")

	var owners, teams, ratings multiFlag
	fs.Var(&owners, "owner", "owner filter, repeatable")
	fs.Var(&teams, "team", "team filter, repeatable")
	fs.Var(&ratings, "effectiveness", "effectiveness filter (effective|somewhat_effective|not_effective), repeatable")

	if err := fs.Parse(args); err != nil {
		fs.Usage()
		return options{}, false
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(stderr, "config:", err)
			return options{}, false
		}
		cfg = loaded
	}
	if *records != "" {
		cfg.RecordsPath = *records
	}
	if *barWidth > 0 {
		cfg.Output.BarWidth = *barWidth
	}

	criteria := analytics.Criteria{Owners: owners, Teams: teams}
	for _, r := range ratings {
		e := types.Effectiveness(r)
		if !e.Valid() {
			fmt.Fprintf(stderr, "unknown effectiveness %q\n", r)
			return options{}, false
		}
		criteria.Effectiveness = append(criteria.Effectiveness, e)
	}

	return options{
		cfg:      cfg,
		criteria: criteria,
		jsonOut:  *jsonOut || cfg.Output.Format == config.FormatJSON,
	}, true
}

func handleDashboard(args []string, stdout io.Writer, stderr io.Writer) int {
	opts, ok := parseOptions("dashboard", args, stderr)
	if !ok {
		return 2
	}

	d, code := buildDashboard(opts, stderr)
	if code != 0 {
		return code
	}

	if opts.jsonOut {
		if err := d.WriteJSON(stdout); err != nil {
			fmt.Fprintln(stderr, err.Error())
			return 1
		}
		return 0
	}
	if err := d.WriteText(stdout, opts.cfg.Output.BarWidth); err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	return 0
}

func handleSection(args []string, stdout io.Writer, stderr io.Writer, s section) int {
	name := map[section]string{
		sectionSummary: "summary",
		sectionStars:   "stars",
		sectionOwners:  "owners",
		sectionInputs:  "inputs",
	}[s]

	opts, ok := parseOptions(name, args, stderr)
	if !ok {
		return 2
	}

	d, code := buildDashboard(opts, stderr)
	if code != 0 {
		return code
	}

	if opts.jsonOut {
		var err error
		switch s {
		case sectionSummary:
			err = writeJSON(stdout, d.Summary)
		case sectionStars:
			err = writeJSON(stdout, d.Stars)
		case sectionOwners:
			err = writeJSON(stdout, d.Owners)
		case sectionInputs:
			err = writeJSON(stdout, d.InputUsage)
		}
		if err != nil {
			fmt.Fprintln(stderr, err.Error())
			return 1
		}
		return 0
	}

	var err error
	switch s {
	case sectionSummary:
		d.WriteSummaryText(stdout)
	case sectionStars:
		err = d.WriteStarsText(stdout)
	case sectionOwners:
		err = d.WriteOwnersText(stdout)
	case sectionInputs:
		err = d.WriteInputUsageText(stdout)
	}
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	return 0
}

func buildDashboard(opts options, stderr io.Writer) (render.Dashboard, int) {
	s, err := store.Load(opts.cfg.RecordsPath)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return render.Dashboard{}, 1
	}

	d, err := render.Build(s.All(), opts.criteria)
	if err != nil {
		// Invalid records past load are a data-quality problem, not
		// an operator mistake.
		fmt.Fprintln(stderr, "data quality:", err.Error())
		return render.Dashboard{}, 1
	}
	return d, 0
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: declog-cli <dashboard|summary|stars|owners|inputs> [flags]")
	fmt.Fprintln(w, "  dashboard  render the full decision dashboard")
	fmt.Fprintln(w, "  summary    key metric tiles only")
	fmt.Fprintln(w, "  stars      STAR decisions table")
	fmt.Fprintln(w, "  owners     owner performance table")
	fmt.Fprintln(w, "  inputs     input usage frequency table")
	fmt.Fprintln(w, "flags: -config -records -owner -team -effectiveness -json -bar-width")
}
