package pricing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/chup1x/carprice/internal/domain"
)

type predictRequest struct {
	Year     float64 `json:"year"`
	Mileage  float64 `json:"mileage"`
	MaxPower float64 `json:"max_power"`
}

type predictResponse struct {
	Prediction *float64 `json:"prediction"`
	Error      string   `json:"error"`
}

// Client is a Model backed by a remote inference service.
type Client struct {
	host, path, port string
	client           *http.Client
}

func NewClient(host, port, path string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
		host: host,
		port: port,
		path: path,
	}
}

func (c *Client) addr() string {
	return fmt.Sprintf("http://%s:%s%s", c.host, c.port, c.path)
}

func (c *Client) Predict(ctx context.Context, record domain.FeatureRecord) (float64, error) {
	body, err := toPredictRequest(record)
	if err != nil {
		return 0, err
	}

	data, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("marshal json body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.addr(), bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("%w: build request: %w", domain.ErrModelUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: to get a response from model service: %w", domain.ErrModelUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var failed predictResponse
		if err := json.NewDecoder(io.LimitReader(res.Body, 1<<16)).Decode(&failed); err == nil && failed.Error != "" {
			return 0, fmt.Errorf("%w: model service returned %d: %s", domain.ErrModelUnavailable, res.StatusCode, failed.Error)
		}
		return 0, fmt.Errorf("%w: model service returned %d", domain.ErrModelUnavailable, res.StatusCode)
	}

	var resBody predictResponse
	if err := json.NewDecoder(res.Body).Decode(&resBody); err != nil {
		return 0, fmt.Errorf("%w: to decode a json body: %w", domain.ErrInference, err)
	}

	if resBody.Error != "" {
		return 0, fmt.Errorf("%w: %s", domain.ErrInference, resBody.Error)
	}

	if resBody.Prediction == nil {
		return 0, fmt.Errorf("%w: model service response has no prediction", domain.ErrInference)
	}

	return *resBody.Prediction, nil
}

func toPredictRequest(record domain.FeatureRecord) (*predictRequest, error) {
	year, err := record.Value("year")
	if err != nil {
		return nil, err
	}
	mileage, err := record.Value("mileage")
	if err != nil {
		return nil, err
	}
	maxPower, err := record.Value("max_power")
	if err != nil {
		return nil, err
	}

	return &predictRequest{Year: year, Mileage: mileage, MaxPower: maxPower}, nil
}
