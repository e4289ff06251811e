package probe

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultTimeout is the request timeout used when the Zabbix server's timeout
// can not be determined.
const DefaultTimeout = 28 * time.Second

// Client fetches feeds from the status API.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	Timeout    time.Duration
}

// Fetch retrieves and decodes the feed at url.
func (c *Client) Fetch(ctx context.Context, url string) (Feed, error) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	request.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		request.Header.Set("User-Agent", c.UserAgent)
	}

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	response, err := client.Do(request)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("timed out after %s retrieving %s", timeout, url)
		}
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected response from %s: %s", url, response.Status)
	}

	var feed Feed
	if err := json.NewDecoder(response.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("unable to decode response from %s: %w", url, err)
	}

	return feed, nil
}

// TimeoutFromZabbixConfig returns a request timeout that leaves 2 seconds of
// the Zabbix server's own Timeout setting for processing. It returns
// DefaultTimeout if the file or setting can not be read.
func TimeoutFromZabbixConfig(path string) time.Duration {
	f, err := os.Open(path)
	if err != nil {
		return DefaultTimeout
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name, value, ok := strings.Cut(scanner.Text(), "=")
		if !ok || strings.TrimSpace(name) != "Timeout" {
			continue
		}

		seconds, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || seconds <= 2 {
			return DefaultTimeout
		}

		return time.Duration((seconds - 2) * float64(time.Second))
	}

	return DefaultTimeout
}
