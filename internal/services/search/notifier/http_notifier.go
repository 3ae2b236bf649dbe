package notifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Pomi44/OIB/internal/services/search"
)

const (
	defaultNotifyTimeout = 5 * time.Second
	maxErrorBody         = 512
)

type HTTPNotifierConfig struct {
	NotifyURL string        `yaml:"notify_url"`
	Timeout   time.Duration `yaml:"timeout"`
}

// httpNotifier posts every search result, found or not, to a webhook.
type httpNotifier struct {
	url    string
	client *http.Client
}

func NewHTTPNotifier(config *HTTPNotifierConfig) *httpNotifier {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultNotifyTimeout
	}

	return &httpNotifier{
		url:    config.NotifyURL,
		client: &http.Client{Timeout: timeout},
	}
}

func (n *httpNotifier) Notify(result *search.Result) error {
	body, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode search result: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Task-ID", result.TaskID.String())

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("post search result to %s: %w", n.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		reply, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("webhook %s rejected search result: %s: %s",
			n.url, resp.Status, strings.TrimSpace(string(reply)))
	}

	slog.Debug("search result delivered",
		slog.String("task_id", result.TaskID.String()),
		slog.String("status", string(result.Status)),
		slog.Int("http_status", resp.StatusCode),
	)

	return nil
}
