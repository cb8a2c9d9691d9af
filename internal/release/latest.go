package release

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/conn-castle/sqltool/internal/messages"
)

var apiBaseURL = "https://api.github.com"
var httpClient = &http.Client{Timeout: 10 * time.Second}
var retryDelay = 250 * time.Millisecond

const (
	fetchRetryCount  = 1
	releasesPageSize = 30
)

// ErrRepoNotFound reports that the upstream repository does not exist or is not visible.
var ErrRepoNotFound = errors.New(messages.ReleaseErrRepoNotFound)

// ErrNoMatchingRelease reports that no published release passed the query filters.
var ErrNoMatchingRelease = errors.New(messages.ReleaseErrNoMatch)

// Options filters the release query.
type Options struct {
	// PreRelease allows releases flagged as pre-releases to be returned.
	PreRelease bool
	// RequireAssets skips releases that have no attached assets.
	RequireAssets bool
}

// Asset is a file attached to a release.
type Asset struct {
	Name        string
	DownloadURL string
}

// Release is a published upstream release.
type Release struct {
	Version    string
	PreRelease bool
	Assets     []Asset
}

// RateLimitError indicates GitHub's API rate limit was hit while querying releases.
type RateLimitError struct {
	StatusCode int
	Status     string
	Remaining  *int
}

func (e *RateLimitError) Error() string {
	remainingText := "unknown"
	if e.Remaining != nil {
		remainingText = fmt.Sprintf("%d", *e.Remaining)
	}
	return fmt.Sprintf("github api rate limit exceeded (%s, remaining=%s)", e.Status, remainingText)
}

// IsRateLimitError reports whether err represents a GitHub API rate-limit condition.
func IsRateLimitError(err error) bool {
	var rl *RateLimitError
	return errors.As(err, &rl)
}

// GitHub queries the GitHub releases API.
// The zero value is ready to use; Token is sent as a bearer token when set.
type GitHub struct {
	Token string
}

type githubRelease struct {
	TagName    string        `json:"tag_name"`
	Draft      bool          `json:"draft"`
	Prerelease bool          `json:"prerelease"`
	Assets     []githubAsset `json:"assets"`
}

type githubAsset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// Latest returns the most recent release of repo ("owner/name") that passes opts.
// Drafts are never returned.
func (g GitHub) Latest(ctx context.Context, repo string, opts Options) (Release, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := validateRepo(repo); err != nil {
		return Release{}, err
	}
	releases, err := g.fetchReleases(ctx, repo)
	if err != nil {
		return Release{}, err
	}
	for _, r := range releases {
		if r.Draft {
			continue
		}
		if r.Prerelease && !opts.PreRelease {
			continue
		}
		if opts.RequireAssets && len(r.Assets) == 0 {
			continue
		}
		tag := strings.TrimSpace(r.TagName)
		if tag == "" {
			return Release{}, fmt.Errorf(messages.ReleaseMissingTagFmt, repo)
		}
		out := Release{Version: tag, PreRelease: r.Prerelease}
		for _, a := range r.Assets {
			out.Assets = append(out.Assets, Asset{Name: a.Name, DownloadURL: a.BrowserDownloadURL})
		}
		return out, nil
	}
	return Release{}, fmt.Errorf(messages.ReleaseNoMatchFmt, ErrNoMatchingRelease, repo, opts.PreRelease, opts.RequireAssets)
}

// fetchReleases returns the first page of releases, newest first.
func (g GitHub) fetchReleases(ctx context.Context, repo string) ([]githubRelease, error) {
	url := fmt.Sprintf("%s/repos/%s/releases?per_page=%d", strings.TrimRight(apiBaseURL, "/"), repo, releasesPageSize)
	for attempt := 0; attempt <= fetchRetryCount; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf(messages.ReleaseCreateRequestErrFmt, err)
		}
		req.Header.Set("Accept", "application/vnd.github+json")
		req.Header.Set("User-Agent", "sqltool")
		if token := strings.TrimSpace(g.Token); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := httpClient.Do(req)
		if err != nil {
			if shouldRetry(err, 0, attempt) {
				time.Sleep(retryDelay)
				continue
			}
			return nil, fmt.Errorf(messages.ReleaseFetchErrFmt, repo, err)
		}

		if resp.StatusCode != http.StatusOK {
			if rateLimitErr := rateLimitErrorFromResponse(resp); rateLimitErr != nil {
				_ = resp.Body.Close()
				return nil, rateLimitErr
			}
			status := resp.StatusCode
			statusText := resp.Status
			_ = resp.Body.Close()
			if status == http.StatusNotFound {
				return nil, fmt.Errorf(messages.ReleaseRepoNotFoundFmt, ErrRepoNotFound, repo)
			}
			if shouldRetry(nil, status, attempt) {
				time.Sleep(retryDelay)
				continue
			}
			return nil, fmt.Errorf(messages.ReleaseFetchStatusFmt, repo, statusText)
		}

		var payload []githubRelease
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			_ = resp.Body.Close()
			return nil, fmt.Errorf(messages.ReleaseDecodeErrFmt, repo, err)
		}
		_ = resp.Body.Close()
		return payload, nil
	}

	return nil, fmt.Errorf(messages.ReleaseFetchErrFmt, repo, errors.New("retry budget exhausted"))
}

func validateRepo(repo string) error {
	parts := strings.Split(repo, "/")
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		return fmt.Errorf(messages.ReleaseInvalidRepoFmt, repo)
	}
	return nil
}

func rateLimitErrorFromResponse(resp *http.Response) *RateLimitError {
	if resp == nil {
		return nil
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return &RateLimitError{StatusCode: resp.StatusCode, Status: resp.Status}
	}
	// GitHub returns 403 Forbidden for unauthenticated exhaustion; confirm with rate-limit headers.
	if resp.StatusCode == http.StatusForbidden {
		remainingStr := strings.TrimSpace(resp.Header.Get("X-RateLimit-Remaining"))
		if remainingStr == "" {
			return nil
		}
		remaining, err := strconv.Atoi(remainingStr)
		if err != nil {
			return nil //nolint:nilerr // Malformed header means we cannot confirm rate limiting.
		}
		if remaining == 0 {
			return &RateLimitError{StatusCode: resp.StatusCode, Status: resp.Status, Remaining: &remaining}
		}
	}
	return nil
}

func shouldRetry(err error, statusCode int, attempt int) bool {
	if attempt >= fetchRetryCount {
		return false
	}
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false
		}
		var netErr net.Error
		return errors.As(err, &netErr)
	}
	return statusCode >= 500 && statusCode <= 599
}
