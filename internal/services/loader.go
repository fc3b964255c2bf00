package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/marcel-maitland/mb2-webinar-catalog/internal/models"
)

// maxFeedBytes bounds how much of a response body the loader will read.
const maxFeedBytes = 16 << 20

// FeedLoader performs the single bounded fetch of the event feed per
// run. The source is either an http(s) URL or a local file path. There
// is no retry: a failed load surfaces one LoadError and the caller
// renders an empty catalog.
type FeedLoader struct {
	source string
	client *http.Client
	log    logrus.FieldLogger
}

// NewFeedLoader creates a loader for the given source with an explicit
// overall timeout on the HTTP path.
func NewFeedLoader(source string, timeout time.Duration, log logrus.FieldLogger) *FeedLoader {
	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 60 * time.Second}).DialContext,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}

	return &FeedLoader{
		source: source,
		client: &http.Client{Timeout: timeout, Transport: tr},
		log:    log,
	}
}

// Source returns the configured feed location.
func (fl *FeedLoader) Source() string {
	return fl.source
}

// Load fetches and decodes the feed envelope. Cancelling ctx aborts the
// fetch; timeouts and malformed payloads surface as a LoadError.
func (fl *FeedLoader) Load(ctx context.Context) (*models.Feed, error) {
	runID := uuid.New().String()

	log := fl.log
	if log == nil {
		log = logrus.StandardLogger()
	}
	log = log.WithFields(logrus.Fields{"run_id": runID, "source": fl.source})
	log.Info("loading feed")

	body, err := fl.fetch(ctx)
	if err != nil {
		log.WithError(err).Warn("feed load failed")
		return nil, err
	}

	var feed models.Feed
	if err := json.Unmarshal(body, &feed); err != nil {
		message := "feed is not valid JSON"
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			message = "feed has an unexpected shape"
		}
		err = models.NewLoadError(fl.source, message, err)
		log.WithError(err).Warn("feed load failed")
		return nil, err
	}

	if feed.Items == nil {
		err = models.NewLoadError(fl.source, "feed has no items list", nil)
		log.WithError(err).Warn("feed load failed")
		return nil, err
	}

	log.WithField("items", len(feed.Items)).Info("feed loaded")
	return &feed, nil
}

func (fl *FeedLoader) fetch(ctx context.Context) ([]byte, error) {
	if strings.HasPrefix(fl.source, "http://") || strings.HasPrefix(fl.source, "https://") {
		return fl.fetchHTTP(ctx)
	}

	body, err := os.ReadFile(fl.source)
	if err != nil {
		return nil, models.NewLoadError(fl.source, "reading feed file", err)
	}
	return body, nil
}

func (fl *FeedLoader) fetchHTTP(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fl.source, nil)
	if err != nil {
		return nil, models.NewLoadError(fl.source, "building feed request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := fl.client.Do(req)
	if err != nil {
		return nil, models.NewLoadError(fl.source, "fetching feed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, models.NewLoadError(fl.source, fmt.Sprintf("feed returned status %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, models.NewLoadError(fl.source, "reading feed response", err)
	}

	return body, nil
}
