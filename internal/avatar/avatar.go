// Package avatar loads owner avatars for display in the terminal.
//
// A terminal can't show the picture itself, so a loaded avatar is rendered as
// its URL plus the image's dimensions and format. Load failures are never
// surfaced to the screen; they're only logged.
package avatar

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"time"

	"emperror.dev/errors"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// Loader renders an image URL into a named display target.
type Loader interface {
	// Load returns a command that fetches url in the background. On success
	// the command produces a Loaded message for target; on failure it
	// produces nil.
	Load(ctx context.Context, url string, target string) tea.Cmd
}

// Loaded is sent when an image has been loaded into Target.
type Loaded struct {
	Target    string
	URL       string
	Rendition string
}

// HTTPLoader fetches images over HTTP and decodes their headers.
type HTTPLoader struct {
	Client *http.Client
	// MaxBytes caps how much of the body is read. Zero means 1 MiB.
	MaxBytes int64
}

func NewHTTPLoader() *HTTPLoader {
	return &HTTPLoader{Client: &http.Client{Timeout: 10 * time.Second}}
}

func (l *HTTPLoader) Load(ctx context.Context, url string, target string) tea.Cmd {
	if url == "" {
		return nil
	}
	return func() tea.Msg {
		log := logrus.WithFields(logrus.Fields{"url": url, "target": target})
		rendition, err := l.fetch(ctx, url)
		if err != nil {
			log.WithError(err).Debug("failed to load image")
			return nil
		}
		log.WithField("rendition", rendition).Debug("loaded image")
		return Loaded{Target: target, URL: url, Rendition: rendition}
	}
}

func (l *HTTPLoader) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to create request")
	}
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	res, err := client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to fetch image")
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return "", errors.Errorf("unexpected status fetching image: %s", res.Status)
	}

	maxBytes := l.MaxBytes
	if maxBytes <= 0 {
		maxBytes = 1 << 20
	}
	cfg, format, err := image.DecodeConfig(io.LimitReader(res.Body, maxBytes))
	if err != nil {
		return "", errors.Wrap(err, "failed to decode image")
	}
	return fmt.Sprintf("%s (%dx%d %s)", url, cfg.Width, cfg.Height, format), nil
}
