package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"engagement-metrics-service/internal/metrics/adapters/csvfile"
	"engagement-metrics-service/internal/metrics/core/domain"
	"engagement-metrics-service/internal/metrics/core/usecase"

	log "github.com/sirupsen/logrus"
)

// report computes engagement metrics from a CSV event log, no database
// required. Growth rate is printed only when a prior window is given; it
// compares the prior window against the main one.
func main() {
	var (
		eventsPath = flag.String("events", "", "path to the CSV event log (required)")
		fromStr    = flag.String("from", "", "window start, YYYY-MM-DD (required)")
		toStr      = flag.String("to", "", "window end, YYYY-MM-DD (required)")
		days       = flag.Float64("days", 0, "divisor for average DAU (required, positive)")
		priorFrom  = flag.String("prior-from", "", "prior window start for growth rate, YYYY-MM-DD")
		priorTo    = flag.String("prior-to", "", "prior window end for growth rate, YYYY-MM-DD")
	)
	flag.Parse()

	// The divisor is always caller-supplied, never derived from the window.
	if *eventsPath == "" || *fromStr == "" || *toStr == "" || *days <= 0 {
		flag.Usage()
		os.Exit(2)
	}

	from := parseDateFlag("from", *fromStr)
	to := parseDateFlag("to", *toStr)
	divisor := *days

	uc := usecase.NewEngagementUseCase(csvfile.NewLoader(*eventsPath))
	ctx := context.Background()

	avgDAU, err := uc.AverageDailyActiveUsers(ctx, usecase.AverageDAUInput{
		From:    from,
		To:      to,
		Divisor: divisor,
	})
	if err != nil {
		log.WithError(err).Fatal("average DAU failed")
	}

	mau, err := uc.MonthlyActiveUsers(ctx, usecase.MAUInput{From: from, To: to})
	if err != nil {
		log.WithError(err).Fatal("MAU failed")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "Average daily active users (%s to %s, days=%g)\n", *fromStr, *toStr, divisor)
	fmt.Fprintln(w, "ACCOUNT\tAVG DAU")
	for _, row := range domain.SortedRows(avgDAU) {
		fmt.Fprintf(w, "%s\t%.2f\n", row.AccountID, row.Value)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Monthly active users (%s to %s)\n", *fromStr, *toStr)
	fmt.Fprintln(w, "ACCOUNT\tMAU")
	for _, row := range domain.SortedCounts(mau) {
		fmt.Fprintf(w, "%s\t%d\n", row.AccountID, row.Count)
	}
	fmt.Fprintln(w)

	if *priorFrom != "" || *priorTo != "" {
		if *priorFrom == "" || *priorTo == "" {
			log.Fatal("growth rate needs both -prior-from and -prior-to")
		}
		pFrom := parseDateFlag("prior-from", *priorFrom)
		pTo := parseDateFlag("prior-to", *priorTo)

		growth, err := uc.UserGrowthRate(ctx, usecase.GrowthInput{
			PriorFrom:   pFrom,
			PriorTo:     pTo,
			CurrentFrom: from,
			CurrentTo:   to,
		})
		if err != nil {
			log.WithError(err).Fatal("growth rate failed")
		}

		fmt.Fprintf(w, "User growth rate (prior %s to %s vs current %s to %s)\n",
			*priorFrom, *priorTo, *fromStr, *toStr)
		fmt.Fprintln(w, "ACCOUNT\tGROWTH")
		for _, row := range domain.SortedRows(growth) {
			fmt.Fprintf(w, "%s\t%.4f\n", row.AccountID, row.Value)
		}
		fmt.Fprintln(w)
	}

	if err := w.Flush(); err != nil {
		log.WithError(err).Fatal("writing report")
	}
}

func parseDateFlag(name, value string) time.Time {
	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		log.WithField("flag", name).Fatal("want a YYYY-MM-DD date")
	}
	return parsed
}
