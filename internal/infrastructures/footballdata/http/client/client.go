package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	derr "github.com/ozzus/footdash/internal/domain/errors"
	"github.com/ozzus/footdash/internal/infrastructures/footballdata/dto"
	"github.com/ozzus/footdash/internal/infrastructures/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultBaseURL = "https://api.football-data.org/v4"
	authHeader     = "X-Auth-Token"

	endpointMatches   = "matches"
	endpointStandings = "standings"
)

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	metrics    *metrics.Metrics
	tracer     trace.Tracer
}

func NewClient(baseURL, token string, httpClient *http.Client, m *metrics.Metrics) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		token:      strings.TrimSpace(token),
		httpClient: httpClient,
		metrics:    m,
		tracer:     otel.Tracer("github.com/ozzus/footdash/footballdata"),
	}
}

func (c *Client) GetMatches(ctx context.Context, competitionCode, dateFrom, dateTo string) (dto.GetMatchesResponse, error) {
	query := url.Values{}
	query.Set("dateFrom", dateFrom)
	query.Set("dateTo", dateTo)

	var resp dto.GetMatchesResponse
	if err := c.getJSON(ctx, endpointMatches, competitionCode, query, &resp); err != nil {
		return dto.GetMatchesResponse{}, err
	}
	return resp, nil
}

func (c *Client) GetStandings(ctx context.Context, competitionCode string) (dto.GetStandingsResponse, error) {
	var resp dto.GetStandingsResponse
	if err := c.getJSON(ctx, endpointStandings, competitionCode, nil, &resp); err != nil {
		return dto.GetStandingsResponse{}, err
	}
	return resp, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint, competitionCode string, query url.Values, out any) (err error) {
	ctx, span := c.tracer.Start(ctx, "footballdata."+endpoint, trace.WithAttributes(
		attribute.String("competition", competitionCode),
	))
	start := time.Now()
	defer func() {
		c.metrics.ObserveUpstream(endpoint, competitionCode, outcomeOf(err), time.Since(start))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if c.token == "" {
		return fmt.Errorf("football-data token is empty")
	}

	reqURL, err := c.buildURL(endpoint, competitionCode, query)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set(authHeader, c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("%w: do request: %v", derr.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %s", derr.ErrCompetitionNotFound, competitionCode)
		}
		return fmt.Errorf("%w: unexpected status: %s", derr.ErrSourceUnavailable, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (c *Client) buildURL(endpoint, competitionCode string, query url.Values) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(competitionCode))
	if code == "" {
		return "", fmt.Errorf("competition code is empty")
	}

	u, err := url.Parse(c.baseURL + "/competitions/" + url.PathEscape(code) + "/" + endpoint)
	if err != nil {
		return "", fmt.Errorf("parse football-data base url: %w", err)
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String(), nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, derr.ErrCompetitionNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, derr.ErrSourceUnavailable):
		return metrics.OutcomeUnavailable
	default:
		return metrics.OutcomeError
	}
}
