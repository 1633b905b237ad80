package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"jobscout-bot/internal/models"
)

const leverBaseURL = "https://api.lever.co/v0/postings"

// Lever lists postings from the public Lever postings API.
type Lever struct {
	baseURL string
	orgs    []string
	allow   []string
	hc      *http.Client
	limiter *HostLimiter
	logger  *zap.Logger
}

func NewLever(orgs, allow []string, timeout time.Duration, limiter *HostLimiter, logger *zap.Logger) *Lever {
	return &Lever{
		baseURL: leverBaseURL,
		orgs:    orgs,
		allow:   allow,
		hc:      newHTTPClient(timeout),
		limiter: limiter,
		logger:  logger,
	}
}

func (l *Lever) Name() string { return "lever" }

type leverPosting struct {
	ID         string `json:"id"`
	Text       string `json:"text"` // title
	HostedURL  string `json:"hostedUrl"`
	Categories struct {
		Location string `json:"location"`
	} `json:"categories"`
	Description string `json:"description"` // html
}

func (l *Lever) List(ctx context.Context) ([]models.Posting, error) {
	var out []models.Posting
	var lastErr error

	for _, org := range l.orgs {
		postings, err := l.listOrg(ctx, org)
		if err != nil {
			l.logger.Warn("lever org failed",
				zap.String("org", org),
				zap.Error(err),
			)
			lastErr = err
			continue
		}
		out = append(out, postings...)
	}

	if out == nil && lastErr != nil {
		return nil, lastErr
	}
	return FilterByLocation(l.allow, out), nil
}

func (l *Lever) listOrg(ctx context.Context, org string) ([]models.Posting, error) {
	url := fmt.Sprintf("%s/%s?mode=json", l.baseURL, org)

	body, err := getJSON(ctx, l.hc, l.limiter, url)
	if err != nil {
		return nil, fmt.Errorf("lever %s: %w", org, err)
	}

	var postings []leverPosting
	if err := json.Unmarshal(body, &postings); err != nil {
		return nil, fmt.Errorf("lever %s: %w: %v", org, ErrUnavailable, err)
	}

	out := make([]models.Posting, 0, len(postings))
	for _, p := range postings {
		if p.ID == "" || p.HostedURL == "" || strings.TrimSpace(p.Text) == "" {
			continue
		}
		out = append(out, models.Posting{
			SourceID:    l.Name(),
			ExternalKey: fmt.Sprintf("lever:%s:%s", org, p.ID),
			Title:       strings.TrimSpace(p.Text),
			Company:     org,
			Location:    p.Categories.Location,
			Description: stripHTML(p.Description),
			URL:         p.HostedURL,
		})
	}

	l.logger.Debug("lever org listed",
		zap.String("org", org),
		zap.Int("postings", len(out)),
	)

	return out, nil
}
