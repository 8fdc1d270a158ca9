package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/davidahmann/declog/pkg/types"
)

const dateLayout = "2006-01-02"

// WriteText renders the full dashboard as plain text. barWidth scales
// the effectiveness chart's widest bar.
func (d Dashboard) WriteText(w io.Writer, barWidth int) error {
	fmt.Fprintln(w, "Decision Intelligence Dashboard")
	fmt.Fprintln(w, "Are we making the right decisions, fast enough, with the right inputs?")
	fmt.Fprintln(w)

	d.writeSummary(w)
	if err := d.writeStars(w); err != nil {
		return err
	}
	if err := d.writeLog(w); err != nil {
		return err
	}
	d.writeBreakdown(w, barWidth)
	if err := d.writeInputUsage(w); err != nil {
		return err
	}
	if err := d.writeOwners(w); err != nil {
		return err
	}
	writeRecommendations(w)
	return nil
}

// WriteSummaryText renders only the key-metric tiles.
func (d Dashboard) WriteSummaryText(w io.Writer) {
	d.writeSummary(w)
}

// WriteStarsText renders only the STAR decisions table.
func (d Dashboard) WriteStarsText(w io.Writer) error {
	return d.writeStars(w)
}

// WriteOwnersText renders only the owner performance table.
func (d Dashboard) WriteOwnersText(w io.Writer) error {
	return d.writeOwners(w)
}

// WriteInputUsageText renders only the input usage table.
func (d Dashboard) WriteInputUsageText(w io.Writer) error {
	return d.writeInputUsage(w)
}

func (d Dashboard) writeSummary(w io.Writer) {
	fmt.Fprintln(w, "Key Metrics")
	fmt.Fprintf(w, "  Total Decisions      %d\n", d.Summary.TotalCount)
	fmt.Fprintf(w, "  Avg Time to Outcome  %.1f days\n", d.Summary.AvgTimeToOutcome)
	fmt.Fprintf(w, "  Effective Rate       %d%%\n", d.Summary.EffectiveRatePercent)
	fmt.Fprintf(w, "  Repeatable Wins      %d\n", d.Summary.RepeatableWinCount)
	fmt.Fprintln(w)
}

func (d Dashboard) writeStars(w io.Writer) error {
	fmt.Fprintln(w, "STAR Decisions (High Impact)")
	return writeLogTable(w, d.Stars)
}

func (d Dashboard) writeLog(w io.Writer) error {
	fmt.Fprintln(w, "All Decisions Logged")
	return writeLogTable(w, d.Rows)
}

func writeLogTable(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		fmt.Fprintln(w, "  (none)")
		fmt.Fprintln(w)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tOWNER\tTEAM\tDECIDED\tOUTCOME\tGOAL\tRESULT\tEFFECTIVENESS\tDAYS")
	for _, r := range rows {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
			r.ID, r.Owner, r.Team,
			r.DecisionDate.Format(dateLayout), r.OutcomeDate.Format(dateLayout),
			r.Goal, r.Result,
			EffectivenessLabel(r.Effectiveness), r.TimeToOutcomeDays)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return nil
}

func (d Dashboard) writeBreakdown(w io.Writer, barWidth int) {
	fmt.Fprintln(w, "Overall Decision Outcomes")

	max := 0
	for _, rc := range d.Breakdown {
		if rc.Count > max {
			max = rc.Count
		}
	}
	for _, rc := range d.Breakdown {
		width := 0
		if max > 0 {
			width = rc.Count * barWidth / max
		}
		fmt.Fprintf(w, "  %-20s %s %d\n", EffectivenessLabel(rc.Effectiveness), strings.Repeat("#", width), rc.Count)
	}
	fmt.Fprintln(w)
}

func (d Dashboard) writeInputUsage(w io.Writer) error {
	fmt.Fprintln(w, "What Inputs Were Used and How Often")
	if len(d.InputUsage) == 0 {
		fmt.Fprintln(w, "  (none)")
		fmt.Fprintln(w)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  INPUT TYPE\tINPUTS USED\tTIMES USED")
	for _, u := range d.InputUsage {
		fmt.Fprintf(tw, "  %s\t%s\t%d\n", InputTypeLabel(u.InputType), u.InputsUsed, u.Count)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return nil
}

func (d Dashboard) writeOwners(w io.Writer) error {
	fmt.Fprintln(w, "Owner Performance Overview")
	if len(d.Owners) == 0 {
		fmt.Fprintln(w, "  (none)")
		fmt.Fprintln(w)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  OWNER\tDECISIONS MADE\t% EFFECTIVE\tAVG TIME TO OUTCOME")
	for _, o := range d.Owners {
		fmt.Fprintf(tw, "  %s\t%d\t%.1f\t%.1f\n", o.Owner, o.DecisionsMade, o.PercentEffective, o.AvgTimeToOutcome)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return nil
}

func writeRecommendations(w io.Writer) {
	fmt.Fprintln(w, "Recommendations")
	fmt.Fprintln(w, "  - Track STAR decisions and replicate winning patterns")
	fmt.Fprintln(w, "  - Use avg time to outcome to coach team efficiency")
	fmt.Fprintln(w, "  - Build a library of repeatable wins from top contributors")
	fmt.Fprintln(w, "  - Review inputs used in effective decisions and reinforce with training")
}

// EffectivenessLabel is the display form of a rating.
func EffectivenessLabel(e types.Effectiveness) string {
	switch e {
	case types.Effective:
		return "Effective"
	case types.SomewhatEffective:
		return "Somewhat Effective"
	case types.NotEffective:
		return "Not Effective"
	}
	return string(e)
}

// InputTypeLabel is the display form of a derived input type.
func InputTypeLabel(t types.InputType) string {
	switch t {
	case types.DataAnalysis:
		return "Data Analysis"
	case types.Feedback:
		return "Feedback"
	case types.Observation:
		return "Observation"
	}
	return string(t)
}
