package leaguegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/benchboss/tradewinds/internal/domain/model"
)

// HTTP status constant.
const statusOK = 200

// HTTPClient wraps http.Client with a timeout.
type HTTPClient struct {
	client *http.Client
}

func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{client: &http.Client{Timeout: timeout}}
}

func (c *HTTPClient) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

func (c *HTTPClient) post(ctx context.Context, url string, body interface{}) (*http.Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// checkServiceHealth verifies the service is up before the run starts.
func checkServiceHealth(ctx context.Context, config *Config) error {
	log.Printf("checking service health at %s...", config.BaseURL)

	client := newHTTPClient(config.Timeout)
	resp, err := client.get(ctx, config.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("health check request failed: %w", err)
	}
	if _, err := readResponseBody(resp); err != nil {
		return fmt.Errorf("health check read failed: %w", err)
	}
	if resp.StatusCode != statusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}
	log.Println("service is healthy")
	return nil
}

// runAnalysis posts the league snapshot and returns the analysis result.
func runAnalysis(ctx context.Context, config *Config, client *HTTPClient, league *model.LeagueSnapshot, target string) (*model.AnalysisResult, error) {
	resp, err := client.post(ctx, config.BaseURL+"/analyze", analyzeRequest{Target: target, League: league})
	if err != nil {
		return nil, fmt.Errorf("analyze request for %s failed: %w", target, err)
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return nil, fmt.Errorf("analyze read for %s failed: %w", target, err)
	}
	if resp.StatusCode != statusOK {
		return nil, fmt.Errorf("analyze for %s returned status %d: %s", target, resp.StatusCode, string(body))
	}
	var result model.AnalysisResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("analyze decode for %s failed: %w", target, err)
	}
	if result.Target == "" {
		return nil, fmt.Errorf("analyze for %s returned no result", target)
	}
	return &result, nil
}

// fetchProfile reads the stored profile back for verification.
func fetchProfile(ctx context.Context, config *Config, client *HTTPClient, team string) (*model.TeamProfile, error) {
	resp, err := client.get(ctx, config.BaseURL+"/profile/"+url.PathEscape(team))
	if err != nil {
		return nil, fmt.Errorf("profile request for %s failed: %w", team, err)
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return nil, fmt.Errorf("profile read for %s failed: %w", team, err)
	}
	if resp.StatusCode != statusOK {
		return nil, fmt.Errorf("profile for %s returned status %d", team, resp.StatusCode)
	}
	var profile model.TeamProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, fmt.Errorf("profile decode for %s failed: %w", team, err)
	}
	return &profile, nil
}
