// internal/sensor/yhub/client.go
package yhub

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Client reads sensor values from a VirtualHub-style REST endpoint.
// One GET per reading:
//
//	GET <endpoint>/bySerial/<serial>/api/<channel>/currentValue
//
// The response body is the numeric value as text.
type Client struct {
	endpoint string
	hc       *http.Client
}

// Config is minimal transport config.
type Config struct {
	Endpoint string
	Timeout  time.Duration
}

// New creates a hub client. No connection is made until the first read.
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("yhub: endpoint required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 500 * time.Millisecond
	}
	return &Client{
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		hc:       &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Read fetches the current value of one sensor channel.
// path is module serial + "." + channel, e.g. MOD-0001.temperature.
func (c *Client) Read(path string) (float64, error) {
	serial, channel, err := SplitPath(path)
	if err != nil {
		return 0, err
	}

	url := fmt.Sprintf("%s/bySerial/%s/api/%s/currentValue", c.endpoint, serial, channel)
	resp, err := c.hc.Get(url)
	if err != nil {
		return 0, fmt.Errorf("yhub: %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("yhub: %s: unexpected status %s", path, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64))
	if err != nil {
		return 0, fmt.Errorf("yhub: %s: %w", path, err)
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(string(body)), 64)
	if err != nil {
		return 0, fmt.Errorf("yhub: %s: bad value %q", path, strings.TrimSpace(string(body)))
	}
	return v, nil
}

// SplitPath splits a sensor path into module serial and channel name.
func SplitPath(path string) (serial, channel string, err error) {
	i := strings.IndexByte(path, '.')
	if i <= 0 || i == len(path)-1 {
		return "", "", fmt.Errorf("yhub: bad sensor path %q (want serial.channel)", path)
	}
	return path[:i], path[i+1:], nil
}
