package resource_loader

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-resty/resty/v2"
)

// HttpLoader loads resources over HTTP(S)
type HttpLoader struct {
	client *resty.Client
	logger *log.Logger
}

// NewHttpLoader creates a new HttpLoader
func NewHttpLoader(logger *log.Logger) *HttpLoader {
	client := resty.New().
		SetTimeout(30 * time.Second).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(5))
	return &HttpLoader{
		client: client,
		logger: logger,
	}
}

// Load fetches the resource at url
func (l *HttpLoader) Load(ctx context.Context, url string) (string, error) {
	if l.logger != nil {
		l.logger.Debug("fetching resource", "url", url)
	}
	resp, err := l.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("failed to load %s: %s", url, resp.Status())
	}
	return resp.String(), nil
}
