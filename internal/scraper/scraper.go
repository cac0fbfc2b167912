package scraper

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cockroachdb/errors"
	"github.com/dghubble/sling"
	"github.com/pfrederiksen/ffstats/internal/logger"
	"github.com/pfrederiksen/ffstats/internal/table"
)

const (
	DefaultBaseURL   = "https://www.footballdb.com/fantasy-football/index.html"
	DefaultPositions = "QB,RB,WR,TE"
	// DefaultRules selects PPR scoring; "1" is standard.
	DefaultRules     = "2"
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
	Timeout          = 30 * time.Second
)

// Options configures a Scraper. Zero values fall back to the defaults above,
// except HeaderRow which is used as given.
type Options struct {
	BaseURL   string
	Positions string
	Rules     string
	UserAgent string
	Timeout   time.Duration
	HeaderRow int
	Points    table.PointsConversion
	Extract   ExtractOptions

	// SkipUnrecognized drops rows containing an UnrecognizedCellError instead
	// of failing the week.
	SkipUnrecognized bool
}

// weekQuery is encoded into the page URL.
type weekQuery struct {
	Positions string `url:"pos"`
	Year      int    `url:"yr"`
	Week      int    `url:"wk"`
	Rules     string `url:"rules"`
}

// Scraper fetches and parses footballdb weekly fantasy tables
type Scraper struct {
	client *http.Client
	base   *sling.Sling
	opts   Options
}

// New creates a new Scraper instance
func New(opts Options) *Scraper {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Positions == "" {
		opts.Positions = DefaultPositions
	}
	if opts.Rules == "" {
		opts.Rules = DefaultRules
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout == 0 {
		opts.Timeout = Timeout
	}
	if opts.Points.Column == "" {
		opts.Points = table.DefaultPoints
	}

	base := sling.New().Base(opts.BaseURL).
		Set("User-Agent", opts.UserAgent).
		Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8").
		Set("Accept-Language", "en-US,en;q=0.9")

	return &Scraper{
		client: &http.Client{Timeout: opts.Timeout},
		base:   base,
		opts:   opts,
	}
}

func (s *Scraper) request(ctx context.Context, year, week int) (*http.Request, error) {
	req, err := s.base.New().QueryStruct(weekQuery{
		Positions: s.opts.Positions,
		Year:      year,
		Week:      week,
		Rules:     s.opts.Rules,
	}).Request()
	if err != nil {
		return nil, errors.Wrap(err, "creating request")
	}
	return req.WithContext(ctx), nil
}

// BuildURL returns the page URL for one week of a season.
func (s *Scraper) BuildURL(year, week int) (string, error) {
	req, err := s.request(context.Background(), year, week)
	if err != nil {
		return "", err
	}
	return req.URL.String(), nil
}

// Fetch issues the GET for one week and returns the page body. The caller
// closes it. Any non-2xx status is an error; nothing is retried.
func (s *Scraper) Fetch(ctx context.Context, year, week int) (io.ReadCloser, error) {
	req, err := s.request(ctx, year, week)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetching page")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, errors.Wrapf(ErrFetchStatus, "%s: %d", req.URL, resp.StatusCode)
	}

	return resp.Body, nil
}

// ScrapeWeek fetches and parses one week.
func (s *Scraper) ScrapeWeek(ctx context.Context, year, week int) (*table.Table, error) {
	start := time.Now()
	body, err := s.Fetch(ctx, year, week)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	logger.RecordTiming("fetch.week", time.Since(start))

	return s.ParseWeek(body, week)
}

// ParseWeek builds the week table from page markup.
func (s *Scraper) ParseWeek(r io.Reader, week int) (*table.Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing HTML")
	}

	loc, err := LocateTable(doc, s.opts.HeaderRow)
	if err != nil {
		return nil, err
	}

	header, err := table.NormalizeHeader(loc.Header)
	if err != nil {
		return nil, err
	}

	records := make([]table.Record, 0, len(loc.Rows))
	for i, cells := range loc.Rows {
		rec, err := ExtractRow(cells, week, s.opts.Extract)
		if err != nil {
			var cellErr *UnrecognizedCellError
			if s.opts.SkipUnrecognized && errors.As(err, &cellErr) {
				logger.Warn("Skipping row with unrecognized cell", logger.Fields{
					"week": week,
					"row":  i,
					"kind": cellErr.Kind.String(),
					"text": cellErr.Text,
				})
				logger.IncrCounter("rows.skipped")
				continue
			}
			return nil, errors.Wrapf(err, "week %d row %d", week, i)
		}
		records = append(records, rec)
	}

	t, err := table.Assemble(header, records, s.opts.Points)
	if err != nil {
		return nil, errors.Wrapf(err, "week %d", week)
	}

	logger.IncrCounter("weeks.parsed")
	logger.AddCounter("rows.parsed", int64(t.Len()))
	return t, nil
}
