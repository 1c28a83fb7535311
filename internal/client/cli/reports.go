package cli

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"
)

func (a *App) Reports(ctx context.Context, _ []string) error {
	list, err := a.api.ListReports(ctx)
	if err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Fprintln(a.out, "No reports yet, use 'report'")
		return nil
	}
	for _, r := range list {
		fmt.Fprintln(a.out, r)
	}
	return nil
}

func (a *App) SubmitReport(ctx context.Context, _ []string) error {
	category, err := GetSimpleText(a.in, "Category (poor-lighting, suspicious-activity, safe-area, harassment)", a.out)
	if err != nil {
		return err
	}
	description, err := GetSimpleText(a.in, "Description", a.out)
	if err != nil {
		return err
	}
	location, err := GetSimpleText(a.in, "Location (optional)", a.out)
	if err != nil {
		return err
	}

	r, err := a.api.SubmitReport(ctx, category, description, location)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Submitted", r)
	return nil
}

func (a *App) RemoveReport(ctx context.Context, args []string) error {
	id, err := parseID(args, "rmreport <id>")
	if err != nil {
		return err
	}
	if err := a.api.RemoveReport(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Removed report #%d\n", id)
	return nil
}

// maxSummaryDays is the longest window that fits a time.Duration.
const maxSummaryDays = math.MaxInt64 / int64(24*time.Hour)

// Summary prints severity counts over the last N days; no argument leaves
// the window to the server.
func (a *App) Summary(ctx context.Context, args []string) error {
	var window time.Duration
	if len(args) > 0 {
		days, err := strconv.Atoi(args[0])
		if err != nil || days <= 0 {
			return fmt.Errorf("invalid number of days %q", args[0])
		}
		if int64(days) > maxSummaryDays {
			return fmt.Errorf("%w: summary [days], at most %d days", errUsage, maxSummaryDays)
		}
		window = time.Duration(days) * 24 * time.Hour
	}

	s, err := a.api.ReportSummary(ctx, window)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, s)
	return nil
}
