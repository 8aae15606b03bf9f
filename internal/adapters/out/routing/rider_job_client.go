// Package routing talks to the external rider routing service that plans
// and assigns transport jobs between locker sites and the laundry.
package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/core/ports"
)

const defaultRequestTimeout = 10 * time.Second

// HTTPRiderJobClient implements ports.RiderJobClient against the routing
// service's REST API.
type HTTPRiderJobClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPRiderJobClient creates a client for the routing service at baseURL.
func NewHTTPRiderJobClient(baseURL string) *HTTPRiderJobClient {
	return &HTTPRiderJobClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
	}
}

// createJobRequest is the wire form of a job creation call.
type createJobRequest struct {
	JobType      string   `json:"jobType"`
	SiteID       string   `json:"siteId"`
	OrderIDs     []string `json:"orderIds"`
	OrderNumbers []string `json:"orderNumbers"`
}

// createJobResponse is the routing service's reply. unavailableOrderIds
// carries the orders the service declined to plan into the job.
type createJobResponse struct {
	JobID               string   `json:"jobId"`
	JobType             string   `json:"jobType"`
	UnavailableOrderIds []string `json:"unavailableOrderIds"`
}

// CreateJob registers a batch transport job with the routing service.
// Callers invoke this inside their transaction so a routing failure rolls
// the local order claims back.
func (c *HTTPRiderJobClient) CreateJob(ctx context.Context, req ports.RiderJobRequest) (ports.RiderJob, error) {
	orderIDs := make([]string, 0, len(req.OrderIDs))
	for _, id := range req.OrderIDs {
		orderIDs = append(orderIDs, id.String())
	}

	body, err := json.Marshal(createJobRequest{
		JobType:      string(req.JobType),
		SiteID:       req.SiteID.String(),
		OrderIDs:     orderIDs,
		OrderNumbers: req.OrderNumbers,
	})
	if err != nil {
		return ports.RiderJob{}, fmt.Errorf("failed to marshal job request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/jobs", bytes.NewReader(body))
	if err != nil {
		return ports.RiderJob{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return ports.RiderJob{}, fmt.Errorf("routing service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return ports.RiderJob{}, fmt.Errorf("routing service returned status %d", resp.StatusCode)
	}

	var jobResp createJobResponse
	if err = json.NewDecoder(resp.Body).Decode(&jobResp); err != nil {
		return ports.RiderJob{}, fmt.Errorf("failed to decode routing response: %w", err)
	}

	unavailable := make([]kernel.UUID, 0, len(jobResp.UnavailableOrderIds))
	for _, raw := range jobResp.UnavailableOrderIds {
		id, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return ports.RiderJob{}, fmt.Errorf("routing response carries malformed order id %q: %w", raw, idErr)
		}
		unavailable = append(unavailable, id)
	}

	return ports.RiderJob{
		JobID:               jobResp.JobID,
		JobType:             ports.JobType(jobResp.JobType),
		UnavailableOrderIDs: unavailable,
	}, nil
}
