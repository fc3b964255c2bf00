package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/marcel-maitland/mb2-webinar-catalog/internal/config"
	"github.com/marcel-maitland/mb2-webinar-catalog/internal/formatter"
	"github.com/marcel-maitland/mb2-webinar-catalog/internal/logger"
	"github.com/marcel-maitland/mb2-webinar-catalog/internal/models"
	"github.com/marcel-maitland/mb2-webinar-catalog/internal/services"
)

// stringList collects repeatable string flags (-category a -category b).
type stringList []string

func (sl *stringList) String() string { return strings.Join(*sl, ",") }

func (sl *stringList) Set(value string) error {
	if v := strings.TrimSpace(value); v != "" {
		*sl = append(*sl, v)
	}
	return nil
}

// floatList collects repeatable numeric flags (-ce 1 -ce 1.5).
type floatList []float64

func (fl *floatList) String() string {
	parts := make([]string, len(*fl))
	for i, v := range *fl {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (fl *floatList) Set(value string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fmt.Errorf("invalid CE hours value %q", value)
	}
	*fl = append(*fl, v)
	return nil
}

func main() {
	var (
		source   = flag.String("source", "", "feed source URL or file path (overrides CATALOG_FEED_URL)")
		query    = flag.String("q", "", "free-text search query")
		showPast = flag.Bool("show-past", false, "include events that have already ended")
		asJSON   = flag.Bool("json", false, "emit the catalog as JSON instead of a table")
		nowFlag  = flag.String("now", "", "RFC3339 override for the current instant (for reproducible runs)")
		timeout  = flag.Duration("timeout", 0, "feed load timeout (overrides CATALOG_LOAD_TIMEOUT)")

		categories stringList
		vendors    stringList
		formats    stringList
		roles      stringList
		ceHours    floatList
	)
	flag.Var(&categories, "category", "category facet selection (repeatable)")
	flag.Var(&vendors, "vendor", "vendor/presenter facet selection (repeatable)")
	flag.Var(&formats, "format", "format facet selection (repeatable)")
	flag.Var(&roles, "role", "role facet selection (repeatable)")
	flag.Var(&ceHours, "ce", "CE hours facet selection (repeatable)")
	flag.Parse()

	cfg, err := config.Load(*source)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *timeout > 0 {
		cfg.LoadTimeout = *timeout
	}

	log := logger.New(cfg.LogLevel)

	now := time.Now()
	if *nowFlag != "" {
		now, err = time.Parse(time.RFC3339, *nowFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -now value %q: %v\n", *nowFlag, err)
			os.Exit(2)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	loader := services.NewFeedLoader(cfg.FeedSource, cfg.LoadTimeout, log)
	feed, err := loader.Load(ctx)
	if err != nil {
		// A failed load renders a clean empty catalog, never a crash.
		fmt.Fprintf(os.Stderr, "Unable to load events: %v\n", err)
		fmt.Print(formatter.RenderCatalog(nil))
		os.Exit(1)
	}

	normalizer := services.NewNormalizerService(log)
	result := normalizer.NormalizeFeed(feed)

	state := models.FilterState{
		Query:      *query,
		Categories: categories,
		Vendors:    vendors,
		CEHours:    ceHours,
		Formats:    formats,
		Roles:      roles,
		ShowPast:   *showPast,
	}

	filter := services.NewFilterService()
	visible := filter.Visible(result.Events, state, now)
	options := filter.Options(result.Events, now)

	if *asJSON {
		output := models.CatalogOutput{
			Metadata: models.NewCatalogMetadata(cfg.FeedSource, feed.UpdatedAt, len(feed.Items), len(visible)),
			Events:   visible,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(output); err != nil {
			log.WithError(err).Error("encoding catalog")
			os.Exit(1)
		}
		return
	}

	if feed.UpdatedAt != "" {
		fmt.Printf("Event catalog (feed updated %s)\n\n", feed.UpdatedAt)
	} else {
		fmt.Printf("Event catalog\n\n")
	}
	fmt.Print(formatter.RenderCatalog(visible))

	if opts := formatter.RenderOptions(options); opts != "" {
		fmt.Printf("\nAvailable filters\n%s", opts)
	}
}
