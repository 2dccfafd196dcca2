package httpfuncs

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/quic-go/quic-go/http3"

	fnderrors "github.com/kohaku-dl/fantia-novel-dl/errors"
)

// Get a new HTTP/2 or HTTP/3 client based on the request arguments
func GetHttpClient(reqArgs *RequestArgs) *http.Client {
	if reqArgs.Http2 {
		return &http.Client{
			Transport: &http.Transport{},
		}
	}
	return &http.Client{
		Transport: &http3.RoundTripper{},
	}
}

// add headers to the request
func AddHeaders(headers map[string]string, defaultUserAgent string, req *http.Request) {
	if userAgent, ok := headers["User-Agent"]; !ok || userAgent == "" {
		headers["User-Agent"] = defaultUserAgent
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}
}

// add cookies to the request
func AddCookies(reqUrl string, cookies []*http.Cookie, req *http.Request) {
	for _, cookie := range cookies {
		if cookie.Domain == "" || strings.Contains(reqUrl, cookie.Domain) {
			req.AddCookie(cookie)
		}
	}
}

// add params to the request
func AddParams(params map[string]string, req *http.Request) {
	if len(params) == 0 {
		return
	}

	query := req.URL.Query()
	for key, value := range params {
		query.Add(key, value)
	}
	req.URL.RawQuery = query.Encode()
}

func sendRequest(req *http.Request, reqArgs *RequestArgs) (*http.Response, error) {
	AddCookies(reqArgs.Url, reqArgs.Cookies, req)
	AddHeaders(reqArgs.Headers, reqArgs.UserAgent, req)
	AddParams(reqArgs.Params, req)

	client := GetHttpClient(reqArgs)
	client.Timeout = time.Duration(reqArgs.Timeout) * time.Second

	res, err := client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, context.Canceled
		}
		return nil, fmt.Errorf(
			"error %d: the request to %s failed, more info => %w",
			fnderrors.CONNECTION_ERROR,
			reqArgs.Url,
			err,
		)
	}

	if reqArgs.CheckStatus && res.StatusCode != http.StatusOK {
		res.Body.Close()
		return nil, fmt.Errorf(
			"error %d: the request to %s returned a non-OK status, status code => %s",
			fnderrors.RESPONSE_ERROR,
			reqArgs.Url,
			res.Status,
		)
	}
	return res, nil
}

// CallRequest is used to make a request to a URL and return the response.
//
// There are no automatic retries, a failed request is
// terminal for the unit of work that issued it.
func CallRequest(reqArgs *RequestArgs) (*http.Response, error) {
	reqArgs.ValidateArgs()
	req, err := http.NewRequestWithContext(
		reqArgs.Context,
		reqArgs.Method,
		reqArgs.Url,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf(
			"error %d: unable to create a new request, more info => %w",
			fnderrors.DEV_ERROR,
			err,
		)
	}

	return sendRequest(req, reqArgs)
}
