package httpfuncs

import (
	"encoding/json"
	"fmt"
	"net/http"

	fnderrors "github.com/kohaku-dl/fantia-novel-dl/errors"
)

// Read the response body and unmarshal it into a interface and returns it
func LoadJsonFromResponse(res *http.Response, format any) error {
	body, err := ReadResBody(res)
	if err != nil {
		return err
	}

	return LoadJsonFromBytes(
		res.Request.URL.String(),
		body,
		format,
	)
}

func LoadJsonFromBytes(url string, body []byte, format any) error {
	if err := json.Unmarshal(body, &format); err != nil {
		if url == "" {
			url = "unknown"
		}
		return fmt.Errorf(
			"error %d: failed to unmarshal json response from %s due to %w",
			fnderrors.JSON_ERROR,
			url,
			err,
		)
	}
	return nil
}
