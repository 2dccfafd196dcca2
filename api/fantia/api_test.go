package fantia

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kohaku-dl/fantia-novel-dl/configs"
	fnderrors "github.com/kohaku-dl/fantia-novel-dl/errors"
)

const loggedInMarker = `<script id="frontend-params">{"is_logged_in": true}</script>`
const loggedOutMarker = `<script id="frontend-params">{"is_logged_in": false}</script>`

func testDlOptions(t *testing.T) *FantiaDlOptions {
	t.Helper()

	config := configs.DefaultConfig()
	config.Authentication.Cookie = "_session_id=test-session"
	config.Authentication.CsrfToken = "test-csrf"
	config.Settings.RequestDelay = 0.001
	config.Settings.RootOutputDir = t.TempDir()

	dlOptions, err := NewFantiaDlOptions(context.Background(), config)
	require.NoError(t, err)
	return dlOptions
}

func listingPageHtml(marker string, postLinks []string, nextHref string) string {
	page := "<html><head>" + marker + "</head><body>"
	for _, href := range postLinks {
		page += fmt.Sprintf(
			`<div class="module post"><a class="link-block" href="%s">post</a></div>`,
			href,
		)
	}
	if nextHref != "" {
		page += fmt.Sprintf(
			`<ul class="pagination"><li class="page-item"><a rel="next" href="%s">next</a></li></ul>`,
			nextHref,
		)
	} else {
		page += `<ul class="pagination"><li class="page-item disabled"><a rel="next" href="#">next</a></li></ul>`
	}
	return page + "</body></html>"
}

func TestCollectPostIdsPaginationAndDedup(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/fanclubs/123/posts", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			// page 2 repeats post 10 and has no enabled next link
			fmt.Fprint(w, listingPageHtml(loggedInMarker, []string{"/posts/10"}, ""))
			return
		}
		fmt.Fprint(w, listingPageHtml(
			loggedInMarker,
			[]string{"/posts/10", "/posts/11"},
			"/fanclubs/123/posts?page=2",
		))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	postIds, err := CollectPostIds(server.URL+"/fanclubs/123/posts", testDlOptions(t))
	require.NoError(t, err)
	assert.Equal(t, []int{10, 11}, postIds)
}

func TestCollectPostIdsIgnoresNonNumericHrefs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, listingPageHtml(
			loggedInMarker,
			[]string{"/posts/42", "/posts/not-a-number", "/about"},
			"",
		))
	}))
	defer server.Close()

	postIds, err := CollectPostIds(server.URL+"/fanclubs/1/posts", testDlOptions(t))
	require.NoError(t, err)
	assert.Equal(t, []int{42}, postIds)
}

func TestCollectPostIdsLoggedOut(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		fmt.Fprint(w, listingPageHtml(loggedOutMarker, []string{"/posts/10"}, ""))
	}))
	defer server.Close()

	postIds, err := CollectPostIds(server.URL+"/fanclubs/1/posts", testDlOptions(t))
	require.ErrorIs(t, err, fnderrors.ErrNotLoggedIn)
	assert.Empty(t, postIds)
	assert.Equal(t, 1, requests)
}

func TestCollectPostIdsMissingLoginMarker(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, listingPageHtml("", []string{"/posts/10"}, ""))
	}))
	defer server.Close()

	_, err := CollectPostIds(server.URL+"/fanclubs/1/posts", testDlOptions(t))
	require.ErrorIs(t, err, fnderrors.ErrNotLoggedIn)
}

func TestCollectPostIdsEmptyPageIsTerminal(t *testing.T) {
	// zero post links with an enabled next link must still terminate
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, listingPageHtml(loggedInMarker, nil, "/fanclubs/1/posts?page=2"))
	}))
	defer server.Close()

	postIds, err := CollectPostIds(server.URL+"/fanclubs/1/posts", testDlOptions(t))
	require.NoError(t, err)
	assert.Empty(t, postIds)
}

func TestCollectPostIdsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	postIds, err := CollectPostIds(server.URL+"/fanclubs/1/posts", testDlOptions(t))
	require.Error(t, err)
	assert.False(t, errors.Is(err, fnderrors.ErrNotLoggedIn))
	assert.Empty(t, postIds)
}
