package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"jobscout-bot/internal/models"
)

const (
	adzunaBaseURL  = "https://api.adzuna.com/v1/api/jobs"
	adzunaPageSize = 50
	adzunaMaxPages = 3
)

// Adzuna lists postings from the Adzuna aggregator API. The API is
// paged; we iterate until a short page or adzunaMaxPages.
type Adzuna struct {
	baseURL string
	appID   string
	appKey  string
	country string
	what    string // search query, e.g. a broad category term
	allow   []string
	hc      *http.Client
	limiter *HostLimiter
	logger  *zap.Logger
}

func NewAdzuna(appID, appKey, country, what string, allow []string, timeout time.Duration, limiter *HostLimiter, logger *zap.Logger) *Adzuna {
	return &Adzuna{
		baseURL: adzunaBaseURL,
		appID:   appID,
		appKey:  appKey,
		country: country,
		what:    what,
		allow:   allow,
		hc:      newHTTPClient(timeout),
		limiter: limiter,
		logger:  logger,
	}
}

func (a *Adzuna) Name() string { return "adzuna" }

type adzunaResponse struct {
	Results []adzunaResult `json:"results"`
}

type adzunaResult struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	RedirectURL string `json:"redirect_url"`
	Company     struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
}

func (a *Adzuna) List(ctx context.Context) ([]models.Posting, error) {
	var out []models.Posting

	for page := 1; page <= adzunaMaxPages; page++ {
		batch, err := a.listPage(ctx, page)
		if err != nil {
			if out != nil {
				// keep what earlier pages returned
				a.logger.Warn("adzuna page failed, using partial results",
					zap.Int("page", page),
					zap.Error(err),
				)
				break
			}
			return nil, err
		}
		out = append(out, batch...)
		if len(batch) < adzunaPageSize {
			break
		}
	}

	return FilterByLocation(a.allow, out), nil
}

func (a *Adzuna) listPage(ctx context.Context, page int) ([]models.Posting, error) {
	params := url.Values{}
	params.Set("app_id", a.appID)
	params.Set("app_key", a.appKey)
	params.Set("results_per_page", strconv.Itoa(adzunaPageSize))
	params.Set("sort_by", "date")
	if a.what != "" {
		params.Set("what", a.what)
	}

	endpoint := fmt.Sprintf("%s/%s/search/%d?%s", a.baseURL, a.country, page, params.Encode())

	body, err := getJSON(ctx, a.hc, a.limiter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("adzuna page %d: %w", page, err)
	}

	var resp adzunaResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("adzuna page %d: %w: %v", page, ErrUnavailable, err)
	}

	out := make([]models.Posting, 0, len(resp.Results))
	for _, r := range resp.Results {
		if strings.TrimSpace(r.Title) == "" || (r.ID == "" && r.RedirectURL == "") {
			continue
		}
		out = append(out, models.Posting{
			SourceID:    a.Name(),
			ExternalKey: fmt.Sprintf("adzuna:%s", r.ID),
			Title:       strings.TrimSpace(r.Title),
			Company:     r.Company.DisplayName,
			Location:    r.Location.DisplayName,
			Description: r.Description,
			URL:         r.RedirectURL,
		})
	}

	return out, nil
}
