package fantia

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kohaku-dl/fantia-novel-dl/constants"
)

// newPostApiServer serves the given JSON body for every post API call
// and points the options' PostApiUrl at itself.
func newPostApiServer(t *testing.T, dlOptions *FantiaDlOptions, jsonBody string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, jsonBody)
	}))
	t.Cleanup(server.Close)
	dlOptions.PostApiUrl = server.URL + "/api/v1/posts/"
	return server
}

func TestDlFantiaPostSavesFreePost(t *testing.T) {
	dlOptions := testDlOptions(t)
	newPostApiServer(t, dlOptions, `{
		"post": {
			"id": 123,
			"title": "Chapter 1",
			"fanclub": {"id": 7, "fanclub_name_with_creator_name": "Novels (Author)"},
			"post_contents": [{"comment": "A"}, {"comment": "B"}]
		}
	}`)

	status, err := DlFantiaPost(123, dlOptions)
	require.NoError(t, err)
	assert.Equal(t, StatusSaved, status)

	filePath := filepath.Join(dlOptions.BaseOutputDirPath, "Novels (Author)", "Chapter 1.txt")
	data, err := os.ReadFile(filePath)
	require.NoError(t, err)

	want := "Title: Chapter 1\n" +
		"URL: " + constants.FANTIA_POST_URL + "123\n" +
		"========================================\n\n" +
		"A\n\nB"
	assert.Equal(t, want, string(data))
}

func TestDlFantiaPostScopeFilter(t *testing.T) {
	freePost := `{"post": {"id": 1, "title": "Free", "fanclub": {"id": 1, "fanclub_name_with_creator_name": "c"}, "post_contents": [{"comment": "text"}]}}`
	paidPost := `{"post": {"id": 2, "title": "Paid", "fanclub": {"id": 1, "fanclub_name_with_creator_name": "c"}, "post_contents": [{"comment": "text", "plan": {"price": 500}}]}}`

	tests := []struct {
		name       string
		scope      string
		jsonBody   string
		wantStatus SaveStatus
	}{
		{"paid scope skips free post", constants.SCOPE_PAID, freePost, StatusSkippedScope},
		{"free scope skips paid post", constants.SCOPE_FREE, paidPost, StatusSkippedScope},
		{"all scope accepts free post", constants.SCOPE_ALL, freePost, StatusSaved},
		{"all scope accepts paid post", constants.SCOPE_ALL, paidPost, StatusSaved},
		{"paid scope accepts paid post", constants.SCOPE_PAID, paidPost, StatusSaved},
		{"free scope accepts free post", constants.SCOPE_FREE, freePost, StatusSaved},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dlOptions := testDlOptions(t)
			dlOptions.Scope = tt.scope
			newPostApiServer(t, dlOptions, tt.jsonBody)

			status, err := DlFantiaPost(1, dlOptions)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, status)

			entries, err := os.ReadDir(dlOptions.BaseOutputDirPath)
			require.NoError(t, err)
			if tt.wantStatus == StatusSaved {
				assert.Len(t, entries, 1)
			} else {
				assert.Empty(t, entries, "no file must be written for a skipped post")
			}
		})
	}
}

func TestDlFantiaPostNoTextContent(t *testing.T) {
	dlOptions := testDlOptions(t)
	newPostApiServer(t, dlOptions, `{
		"post": {
			"id": 5,
			"title": "Images only",
			"fanclub": {"id": 1, "fanclub_name_with_creator_name": "c"},
			"post_contents": [{"category": "photo_gallery"}]
		}
	}`)

	status, err := DlFantiaPost(5, dlOptions)
	require.NoError(t, err)
	assert.Equal(t, StatusSkippedNoText, status)

	entries, err := os.ReadDir(dlOptions.BaseOutputDirPath)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDlFantiaPostMissingPostObject(t *testing.T) {
	dlOptions := testDlOptions(t)
	newPostApiServer(t, dlOptions, `{}`)

	status, err := DlFantiaPost(9, dlOptions)
	require.Error(t, err)
	assert.Equal(t, StatusFailed, status)
}

func TestDlFantiaPostInvalidJson(t *testing.T) {
	dlOptions := testDlOptions(t)
	newPostApiServer(t, dlOptions, `<html>not json</html>`)

	status, err := DlFantiaPost(9, dlOptions)
	require.Error(t, err)
	assert.Equal(t, StatusFailed, status)
}

func TestDlFantiaPostCreatorNameFallback(t *testing.T) {
	dlOptions := testDlOptions(t)
	newPostApiServer(t, dlOptions, `{
		"post": {
			"id": 77,
			"title": "Untitled club",
			"fanclub": {"id": 42},
			"comment": "body text"
		}
	}`)

	status, err := DlFantiaPost(77, dlOptions)
	require.NoError(t, err)
	assert.Equal(t, StatusSaved, status)
	assert.FileExists(t, filepath.Join(dlOptions.BaseOutputDirPath, "fanclub_42", "Untitled club.txt"))
}

func TestDlFantiaPostSanitisesPathComponents(t *testing.T) {
	dlOptions := testDlOptions(t)
	newPostApiServer(t, dlOptions, `{
		"post": {
			"id": 8,
			"title": "What? A title: part 2",
			"fanclub": {"id": 3, "fanclub_name_with_creator_name": "A/B club"},
			"comment": "text"
		}
	}`)

	status, err := DlFantiaPost(8, dlOptions)
	require.NoError(t, err)
	assert.Equal(t, StatusSaved, status)
	assert.FileExists(t, filepath.Join(dlOptions.BaseOutputDirPath, "A-B club", "What- A title- part 2.txt"))
}

func TestDlFantiaPostsContinuesAfterFailure(t *testing.T) {
	dlOptions := testDlOptions(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/posts/1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"post": {"id": 2, "title": "Second", "fanclub": {"id": 1, "fanclub_name_with_creator_name": "c"}, "comment": "text"}}`)
	}))
	t.Cleanup(server.Close)
	dlOptions.PostApiUrl = server.URL + "/api/v1/posts/"

	summary := DlFantiaPosts([]int{1, 2}, dlOptions)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.Saved)
}
