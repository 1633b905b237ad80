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

const greenhouseBaseURL = "https://boards-api.greenhouse.io/v1/boards"

// Greenhouse lists postings from the public Greenhouse board API,
// one request per configured board slug.
type Greenhouse struct {
	baseURL string
	boards  []string
	allow   []string
	hc      *http.Client
	limiter *HostLimiter
	logger  *zap.Logger
}

func NewGreenhouse(boards, allow []string, timeout time.Duration, limiter *HostLimiter, logger *zap.Logger) *Greenhouse {
	return &Greenhouse{
		baseURL: greenhouseBaseURL,
		boards:  boards,
		allow:   allow,
		hc:      newHTTPClient(timeout),
		limiter: limiter,
		logger:  logger,
	}
}

func (g *Greenhouse) Name() string { return "greenhouse" }

type greenhouseJob struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	AbsoluteURL string `json:"absolute_url"`
	Content     string `json:"content"`
	Location    struct {
		Name string `json:"name"`
	} `json:"location"`
}

type greenhouseResponse struct {
	Jobs []greenhouseJob `json:"jobs"`
}

func (g *Greenhouse) List(ctx context.Context) ([]models.Posting, error) {
	var out []models.Posting
	var lastErr error

	for _, board := range g.boards {
		postings, err := g.listBoard(ctx, board)
		if err != nil {
			// one dead board must not sink the other boards
			g.logger.Warn("greenhouse board failed",
				zap.String("board", board),
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
	return FilterByLocation(g.allow, out), nil
}

func (g *Greenhouse) listBoard(ctx context.Context, board string) ([]models.Posting, error) {
	url := fmt.Sprintf("%s/%s/jobs?content=true", g.baseURL, board)

	body, err := getJSON(ctx, g.hc, g.limiter, url)
	if err != nil {
		return nil, fmt.Errorf("greenhouse %s: %w", board, err)
	}

	var resp greenhouseResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("greenhouse %s: %w: %v", board, ErrUnavailable, err)
	}

	out := make([]models.Posting, 0, len(resp.Jobs))
	for _, j := range resp.Jobs {
		// malformed item: skip it, keep the rest of the board
		if strings.TrimSpace(j.Title) == "" || j.AbsoluteURL == "" {
			continue
		}
		out = append(out, models.Posting{
			SourceID:    g.Name(),
			ExternalKey: fmt.Sprintf("greenhouse:%s:%d", board, j.ID),
			Title:       strings.TrimSpace(j.Title),
			Company:     board,
			Location:    j.Location.Name,
			Description: stripHTML(j.Content),
			URL:         j.AbsoluteURL,
		})
	}

	g.logger.Debug("greenhouse board listed",
		zap.String("board", board),
		zap.Int("postings", len(out)),
	)

	return out, nil
}
