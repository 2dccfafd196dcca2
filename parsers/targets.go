package parsers

import (
	"bufio"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	fnderrors "github.com/kohaku-dl/fantia-novel-dl/errors"
)

// TargetKind classifies a user-supplied URL.
type TargetKind int

const (
	// A Fanclub's paginated posts listing page
	TargetFanclub TargetKind = iota

	// A single post page
	TargetPost

	// Anything else on the fantia.jp domain
	TargetUnsupported
)

// Target is one URL from the user's target list file.
type Target struct {
	Url  string
	Kind TargetKind

	// PostId is only set for TargetPost targets.
	PostId int
}

// ClassifyTarget determines whether the given URL refers to a
// Fanclub listing or a single post.
func ClassifyTarget(targetUrl string) Target {
	target := Target{Url: targetUrl, Kind: TargetUnsupported}
	switch {
	case strings.Contains(targetUrl, "/fanclubs/"):
		target.Kind = TargetFanclub
	case strings.Contains(targetUrl, "/posts/"):
		parsed, err := url.Parse(targetUrl)
		if err != nil {
			return target
		}
		lastSegment := strings.TrimSuffix(parsed.Path, "/")
		lastSegment = lastSegment[strings.LastIndex(lastSegment, "/")+1:]
		postId, err := strconv.Atoi(lastSegment)
		if err != nil {
			return target
		}
		target.Kind = TargetPost
		target.PostId = postId
	}
	return target
}

// LoadTargets reads the target list file, one URL per line.
// Blank lines and lines not containing the fantia.jp domain are ignored.
func LoadTargets(path string) ([]Target, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf(
			"error %d: failed to open target list file at %s, more info => %w",
			fnderrors.OS_ERROR,
			path,
			err,
		)
	}
	defer f.Close()

	var targets []Target
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || !strings.Contains(line, "fantia.jp") {
			continue
		}
		targets = append(targets, ClassifyTarget(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf(
			"error %d: failed to read target list file at %s, more info => %w",
			fnderrors.OS_ERROR,
			path,
			err,
		)
	}
	return targets, nil
}
