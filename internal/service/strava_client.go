package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"training-plan-server/internal/apperr"
	"training-plan-server/internal/metrics"
	"training-plan-server/internal/model"
)

const maxErrorBody = 4096

// StravaAPIClient : GET-запросы к REST API Strava с bearer-токеном
type StravaAPIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewStravaAPIClient(baseURL string, httpClient *http.Client) *StravaAPIClient {
	return &StravaAPIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *StravaAPIClient) GetAthlete(ctx context.Context, accessToken string) (*model.Athlete, error) {
	var athlete model.Athlete
	if err := c.get(ctx, accessToken, "/athlete", nil, &athlete); err != nil {
		return nil, err
	}
	return &athlete, nil
}

// GetActivities : страница активностей, новые первыми
func (c *StravaAPIClient) GetActivities(ctx context.Context, accessToken string, page, perPage int) ([]model.Activity, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(perPage))

	activities := []model.Activity{}
	if err := c.get(ctx, accessToken, "/athlete/activities", params, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (c *StravaAPIClient) GetActivity(ctx context.Context, accessToken string, activityID int64) (*model.Activity, error) {
	var activity model.Activity
	path := "/activities/" + strconv.FormatInt(activityID, 10)
	if err := c.get(ctx, accessToken, path, nil, &activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

func (c *StravaAPIClient) get(ctx context.Context, accessToken, path string, params url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &apperr.UpstreamFetchError{Path: path, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.StravaAPIRequests.WithLabelValues(metricEndpoint(path), metrics.ResultFailed).Inc()
		return &apperr.UpstreamFetchError{Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		metrics.StravaAPIRequests.WithLabelValues(metricEndpoint(path), strconv.Itoa(resp.StatusCode)).Inc()
		return &apperr.UpstreamFetchError{Path: path, StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.StravaAPIRequests.WithLabelValues(metricEndpoint(path), metrics.ResultInvalid).Inc()
		return &apperr.UpstreamFetchError{Path: path, Err: fmt.Errorf("ошибка декодирования ответа: %w", err)}
	}

	metrics.StravaAPIRequests.WithLabelValues(metricEndpoint(path), metrics.ResultOK).Inc()
	return nil
}

// metricEndpoint : идентификатор активности не попадает в label
func metricEndpoint(path string) string {
	if strings.HasPrefix(path, "/activities/") {
		return "/activities/{id}"
	}
	return path
}
