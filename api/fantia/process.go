package fantia

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/kohaku-dl/fantia-novel-dl/constants"
	fnderrors "github.com/kohaku-dl/fantia-novel-dl/errors"
	"github.com/kohaku-dl/fantia-novel-dl/httpfuncs"
	"github.com/kohaku-dl/fantia-novel-dl/iofuncs"
	"github.com/kohaku-dl/fantia-novel-dl/logger"
)

// SaveStatus is the outcome of processing a single post.
type SaveStatus int

const (
	StatusSaved SaveStatus = iota
	StatusSkippedScope
	StatusSkippedNoText
	StatusFailed
)

// Summary holds the end-of-run counts for a batch of posts.
type Summary struct {
	Saved         int
	SkippedScope  int
	SkippedNoText int
	Failed        int
}

func (s *Summary) add(status SaveStatus) {
	switch status {
	case StatusSaved:
		s.Saved++
	case StatusSkippedScope:
		s.SkippedScope++
	case StatusSkippedNoText:
		s.SkippedNoText++
	case StatusFailed:
		s.Failed++
	}
}

func getFantiaPostDetails(postId int, dlOptions *FantiaDlOptions) (*FantiaPost, error) {
	if err := dlOptions.waitForSlot(); err != nil {
		return nil, err
	}

	apiBaseUrl := dlOptions.PostApiUrl
	if apiBaseUrl == "" {
		apiBaseUrl = constants.FANTIA_POST_API_URL
	}
	postApiUrl := apiBaseUrl + strconv.Itoa(postId)
	headers := map[string]string{
		"Accept":           "application/json, text/plain, */*",
		"Referer":          PostUrl(postId),
		"X-Csrf-Token":     dlOptions.CsrfToken,
		"X-Requested-With": "XMLHttpRequest",
	}
	res, err := httpfuncs.CallRequest(
		&httpfuncs.RequestArgs{
			Method:      "GET",
			Url:         postApiUrl,
			Cookies:     dlOptions.SessionCookies,
			Headers:     headers,
			UserAgent:   dlOptions.Configs.Authentication.UserAgent,
			CheckStatus: true,
			Context:     dlOptions.GetContext(),
		},
	)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			err = fmt.Errorf(
				"fantia error %d: failed to get post details for %s, more info => %w",
				fnderrors.CONNECTION_ERROR,
				postApiUrl,
				err,
			)
		}
		return nil, err
	}

	var postJson FantiaPost
	if err := httpfuncs.LoadJsonFromResponse(res, &postJson); err != nil {
		return nil, err
	}

	if postJson.Post == nil {
		return nil, fmt.Errorf(
			"fantia error %d: post data not found in API response for %s",
			fnderrors.RESPONSE_ERROR,
			postApiUrl,
		)
	}
	return &postJson, nil
}

// inScope applies the configured download scope to the
// post's paid/free classification.
func inScope(scope string, isPaid bool) bool {
	switch scope {
	case constants.SCOPE_PAID:
		return isPaid
	case constants.SCOPE_FREE:
		return !isPaid
	default:
		return true
	}
}

// DlFantiaPost fetches one post from Fantia's API and saves its text content
// to disk based on the configured download scope.
//
// A scope skip or missing text content is not an error. The returned error is
// non-nil only for the failure conditions that the caller should log.
func DlFantiaPost(postId int, dlOptions *FantiaDlOptions) (SaveStatus, error) {
	postJson, err := getFantiaPostDetails(postId, dlOptions)
	if err != nil {
		return StatusFailed, err
	}

	post := postJson.Post
	title := post.Title
	if title == "" {
		title = fmt.Sprintf("No Title %d", postId)
	}

	// the classification is computed from the content segments at fetch
	// time and is not cached, re-fetching may yield a different result
	isPaid := post.IsPaid()
	if !inScope(dlOptions.Scope, isPaid) {
		logger.MainLogger.Infof(
			"Skipping post %q as it is outside the %q scope.",
			title,
			dlOptions.Scope,
		)
		return StatusSkippedScope, nil
	}

	body, err := post.ExtractBody()
	if err != nil {
		logger.MainLogger.Warnf("Text content not found for post %d (%q).", postId, title)
		return StatusSkippedNoText, nil
	}

	creatorName := post.Fanclub.FanclubNameWithCreatorName
	if creatorName == "" {
		creatorName = fmt.Sprintf("fanclub_%d", post.Fanclub.ID)
	}

	dirPath := iofuncs.GetCreatorFolder(dlOptions.BaseOutputDirPath, creatorName)
	filePath, err := iofuncs.WritePostFile(dirPath, title, PostUrl(postId), body.Text)
	if err != nil {
		return StatusFailed, err
	}

	logger.MainLogger.Infof("Saved -> %s", filePath)
	return StatusSaved, nil
}

// DlFantiaPosts processes the given post IDs sequentially. A single post's
// failure is logged and never stops the processing of subsequent posts.
func DlFantiaPosts(postIds []int, dlOptions *FantiaDlOptions) Summary {
	var summary Summary
	postIdsLen := len(postIds)
	for i, postId := range postIds {
		logger.MainLogger.Infof("Processing post %d [%d/%d]...", postId, i+1, postIdsLen)
		status, err := DlFantiaPost(postId, dlOptions)
		if err != nil {
			logger.LogError(err, logger.ERROR)
		}
		summary.add(status)
	}
	return summary
}
