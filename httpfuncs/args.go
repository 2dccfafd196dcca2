package httpfuncs

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/kohaku-dl/fantia-novel-dl/constants"
	fnderrors "github.com/kohaku-dl/fantia-novel-dl/errors"
)

type RequestArgs struct {
	// Main Request Options
	Method  string
	Url     string
	Timeout int

	// Additional Request Options
	Headers   map[string]string
	Params    map[string]string
	Cookies   []*http.Cookie
	UserAgent string

	// HTTP/2 and HTTP/3 Options
	Http2 bool
	Http3 bool

	// CheckStatus will check the status code of the response for 200 OK.
	// If the status code is not 200 OK, an error is returned.
	// Otherwise, the response is returned regardless of the status code.
	CheckStatus bool

	// Context is used to cancel the request if needed.
	Context context.Context
}

func (args *RequestArgs) validateHttp3Arg() {
	if !args.Http2 && !args.Http3 {
		// Fantia's HTML pages support HTTP/3 but its API endpoints do not.
		if strings.HasPrefix(args.Url, constants.FANTIA_URL) && !strings.HasPrefix(args.Url, constants.FANTIA_POST_API_URL) {
			args.Http3 = true
		} else {
			args.Http2 = true
		}
	} else if args.Http2 && args.Http3 {
		panic(
			fmt.Errorf(
				"error %d: http2 and http3 cannot be enabled at the same time",
				fnderrors.DEV_ERROR,
			),
		)
	}
}

func (args *RequestArgs) getDefaultArgs() {
	if args.Headers == nil {
		args.Headers = make(map[string]string)
	}

	if args.Params == nil {
		args.Params = make(map[string]string)
	}

	if args.Cookies == nil {
		args.Cookies = make([]*http.Cookie, 0)
	}

	if args.UserAgent == "" {
		args.UserAgent = DEFAULT_USER_AGENT
	}

	if args.Context == nil {
		args.Context = context.Background()
	}
}

// ValidateArgs validates the arguments of the request
//
// Will panic if the arguments are invalid as this is a developer error
func (args *RequestArgs) ValidateArgs() {
	args.getDefaultArgs()
	args.validateHttp3Arg()

	if args.Method == "" {
		panic(
			fmt.Errorf(
				"error %d: method cannot be empty",
				fnderrors.DEV_ERROR,
			),
		)
	}

	if args.Url == "" {
		panic(
			fmt.Errorf(
				"error %d: url cannot be empty",
				fnderrors.DEV_ERROR,
			),
		)
	}

	if args.Timeout < 0 {
		panic(
			fmt.Errorf(
				"error %d: timeout cannot be negative",
				fnderrors.DEV_ERROR,
			),
		)
	} else if args.Timeout == 0 {
		args.Timeout = constants.DEFAULT_REQ_TIMEOUT
	}
}
