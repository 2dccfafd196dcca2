package httpfuncs

import (
	"fmt"
	"io"
	"net/http"
	"runtime"
	"strings"

	fnderrors "github.com/kohaku-dl/fantia-novel-dl/errors"
)

var DEFAULT_USER_AGENT string

func init() {
	// https://www.whatismybrowser.com/guides/the-latest-user-agent/chrome
	var userAgent = map[string]string{
		"linux":   "X11; Linux x86_64",
		"darwin":  "Macintosh; Intel Mac OS X 10_15_7",
		"windows": "Windows NT 10.0; Win64; x64",
	}
	userAgentOS, ok := userAgent[runtime.GOOS]
	if !ok { // fallback to Windows
		DEFAULT_USER_AGENT = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0.0.0 Safari/537.36"
	} else {
		DEFAULT_USER_AGENT = fmt.Sprintf("Mozilla/5.0 (%s) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0.0.0 Safari/537.36", userAgentOS)
	}
}

// Returns the last part of the given URL string (without the query string)
func GetLastPartOfUrl(url string) string {
	if strings.Contains(url, "?") {
		url = strings.SplitN(url, "?", 2)[0]
	}
	url = strings.TrimSuffix(url, "/")
	splitted := strings.Split(url, "/")
	return splitted[len(splitted)-1]
}

// Reads and returns the response body in bytes and closes it
func ReadResBody(res *http.Response) ([]byte, error) {
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf(
			"error %d: failed to read response body from %s due to %w",
			fnderrors.RESPONSE_ERROR,
			res.Request.URL.String(),
			err,
		)
	}
	return body, nil
}
