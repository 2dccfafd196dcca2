package fantia

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/kohaku-dl/fantia-novel-dl/constants"
	fnderrors "github.com/kohaku-dl/fantia-novel-dl/errors"
	"github.com/kohaku-dl/fantia-novel-dl/httpfuncs"
	"github.com/kohaku-dl/fantia-novel-dl/logger"
)

// listingPage is the parsed result of one paginated listing page.
type listingPage struct {
	postIds []int

	// nextHref is the href of the enabled pagination-next
	// control, or "" on the last page.
	nextHref string
}

// Parse the HTML response from the Fanclub's listing page to get the post IDs
// and the next page link.
func parseListingHtml(resBody *bytes.Reader, pageUrl string) (*listingPage, error) {
	doc, err := goquery.NewDocumentFromReader(resBody)
	if err != nil {
		return nil, fmt.Errorf(
			"fantia error %d: failed to parse response body of listing page %s, more info => %w",
			fnderrors.HTML_ERROR,
			pageUrl,
			err,
		)
	}

	// Check the login state via the JSON params embedded in the page.
	// A missing marker is treated the same as an explicit logged-out state.
	loginMarker := doc.Find(constants.FANTIA_LOGIN_MARKER_SELECTOR)
	if loginMarker.Length() == 0 || strings.Contains(loginMarker.Text(), constants.FANTIA_LOGGED_OUT_MARKER_JSON) {
		return nil, fnderrors.ErrNotLoggedIn
	}

	page := &listingPage{}
	doc.Find(constants.FANTIA_POST_LINK_SELECTOR).Each(func(i int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists || !strings.Contains(href, "/posts/") {
			return
		}

		// anchors whose trailing path segment is not numeric are ignored
		postId, err := strconv.Atoi(httpfuncs.GetLastPartOfUrl(href))
		if err != nil {
			return
		}
		page.postIds = append(page.postIds, postId)
	})

	if nextLink := doc.Find(constants.FANTIA_NEXT_PAGE_SELECTOR).First(); nextLink.Length() > 0 {
		if href, exists := nextLink.Attr("href"); exists && href != "" {
			page.nextHref = href
		}
	}
	return page, nil
}

func getListingPage(pageUrl string, dlOptions *FantiaDlOptions) (*listingPage, error) {
	if err := dlOptions.waitForSlot(); err != nil {
		return nil, err
	}

	res, err := httpfuncs.CallRequest(
		&httpfuncs.RequestArgs{
			Method:      "GET",
			Url:         pageUrl,
			Cookies:     dlOptions.SessionCookies,
			UserAgent:   dlOptions.Configs.Authentication.UserAgent,
			CheckStatus: true,
			Context:     dlOptions.GetContext(),
		},
	)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			err = fmt.Errorf(
				"fantia error %d: failed to get listing page %s, more info => %w",
				fnderrors.CONNECTION_ERROR,
				pageUrl,
				err,
			)
		}
		return nil, err
	}

	body, err := httpfuncs.ReadResBody(res)
	if err != nil {
		return nil, err
	}
	return parseListingHtml(bytes.NewReader(body), pageUrl)
}

// CollectPostIds walks the Fanclub's paginated posts listing starting at
// listingUrl and returns the post IDs in first-encounter order without
// duplicates.
//
// An unauthenticated session (fnderrors.ErrNotLoggedIn) or an unretrievable
// page fails the entire collection. A page with zero post links is a normal
// terminal condition.
func CollectPostIds(listingUrl string, dlOptions *FantiaDlOptions) ([]int, error) {
	baseUrl, err := url.Parse(listingUrl)
	if err != nil {
		return nil, fmt.Errorf(
			"fantia error %d: invalid listing url %q, more info => %w",
			fnderrors.INPUT_ERROR,
			listingUrl,
			err,
		)
	}

	var postIds []int
	seen := make(map[int]struct{})
	currentUrl := listingUrl
	for pageNum := 1; ; pageNum++ {
		logger.MainLogger.Infof("Scanning listing page %d: %s", pageNum, currentUrl)
		page, err := getListingPage(currentUrl, dlOptions)
		if err != nil {
			return nil, err
		}

		for _, postId := range page.postIds {
			if _, ok := seen[postId]; ok {
				continue
			}
			seen[postId] = struct{}{}
			postIds = append(postIds, postId)
		}

		if len(page.postIds) == 0 {
			logger.MainLogger.Infof("No post links found on page %d, stopping.", pageNum)
			break
		}
		if page.nextHref == "" {
			logger.MainLogger.Info("Reached the last page.")
			break
		}

		nextUrl, err := url.Parse(page.nextHref)
		if err != nil {
			return nil, fmt.Errorf(
				"fantia error %d: invalid next page link %q on %s, more info => %w",
				fnderrors.HTML_ERROR,
				page.nextHref,
				currentUrl,
				err,
			)
		}
		currentUrl = baseUrl.ResolveReference(nextUrl).String()
	}

	logger.MainLogger.Infof("ID collection complete, found a total of %d post(s).", len(postIds))
	return postIds, nil
}
