package fantia

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/kohaku-dl/fantia-novel-dl/configs"
	"github.com/kohaku-dl/fantia-novel-dl/constants"
	fnderrors "github.com/kohaku-dl/fantia-novel-dl/errors"
	"github.com/kohaku-dl/fantia-novel-dl/parsers"
)

// FantiaDlOptions is the struct that contains the options for downloading from Fantia.
type FantiaDlOptions struct {
	ctx context.Context

	Configs *configs.Config

	SessionCookies []*http.Cookie
	CsrfToken      string

	// Scope filters posts by their paid/free classification.
	// One of the constants.SCOPE_* values.
	Scope string

	BaseOutputDirPath string

	// PostApiUrl is the base URL of the post API endpoint.
	// Defaults to constants.FANTIA_POST_API_URL.
	PostApiUrl string

	// Limiter spaces out consecutive network calls. It is shared
	// between listing-page fetches and post API fetches so that the
	// request-spacing contract holds across the whole run.
	Limiter *rate.Limiter
}

func (f *FantiaDlOptions) GetContext() context.Context {
	return f.ctx
}

func (f *FantiaDlOptions) SetContext(ctx context.Context) {
	f.ctx = ctx
}

// NewFantiaDlOptions builds the download options from the loaded config.
// The config must have been validated beforehand.
func NewFantiaDlOptions(ctx context.Context, config *configs.Config) (*FantiaDlOptions, error) {
	if config == nil {
		return nil, fmt.Errorf(
			"fantia error %d: config cannot be nil",
			fnderrors.DEV_ERROR,
		)
	}

	sessionCookies := parsers.ParseCookieString(config.Authentication.Cookie)
	if len(sessionCookies) == 0 {
		return nil, fmt.Errorf(
			"fantia error %d: no cookies could be parsed from the configured cookie string",
			fnderrors.INPUT_ERROR,
		)
	}

	delay := time.Duration(config.Settings.RequestDelay * float64(time.Second))
	return &FantiaDlOptions{
		ctx:               ctx,
		Configs:           config,
		SessionCookies:    sessionCookies,
		CsrfToken:         config.Authentication.CsrfToken,
		Scope:             config.Settings.DownloadScope,
		BaseOutputDirPath: config.Settings.RootOutputDir,
		PostApiUrl:        constants.FANTIA_POST_API_URL,
		Limiter:           rate.NewLimiter(rate.Every(delay), 1),
	}, nil
}

// waitForSlot blocks until the shared limiter allows the next network call.
func (f *FantiaDlOptions) waitForSlot() error {
	if f.Limiter == nil {
		return nil
	}
	if err := f.Limiter.Wait(f.GetContext()); err != nil {
		return fmt.Errorf(
			"fantia error %d: interrupted while waiting for the request limiter, more info => %w",
			fnderrors.UNEXPECTED_ERROR,
			err,
		)
	}
	return nil
}

// PostUrl returns the canonical page URL for the given post ID.
func PostUrl(postId int) string {
	return fmt.Sprintf("%s%d", constants.FANTIA_POST_URL, postId)
}
