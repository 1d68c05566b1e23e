package ngoctham

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

type Config struct {
	URL       string
	Referer   string
	UserAgent string
	GoldTypes []string
}

type Interaction struct {
	logger *slog.Logger
	client *http.Client
	cnf    Config
}

// NewInteraction creates a new instance of Interaction with the Ngoc Tham price board.
func NewInteraction(logger *slog.Logger, client *http.Client, cnf Config) *Interaction {
	return &Interaction{
		logger: logger.With("component", "ngoctham"),
		client: client,
		cnf:    cnf,
	}
}

// GetBoard fetches and decodes the current price board.
func (that *Interaction) GetBoard(ctx context.Context) (*Board, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, that.cnf.URL, nil)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("create request: %w", err)}
	}

	// The endpoint rejects requests without a browser user agent and referer.
	req.Header.Set("User-Agent", that.cnf.UserAgent)
	req.Header.Set("Referer", that.cnf.Referer)

	resp, err := that.client.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("do request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &NetworkError{Err: fmt.Errorf("bad status code: %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("read response body: %w", err)}
	}

	return ParseBoard(body, that.cnf.GoldTypes)
}
