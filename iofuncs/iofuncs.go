package iofuncs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kohaku-dl/fantia-novel-dl/constants"
	fnderrors "github.com/kohaku-dl/fantia-novel-dl/errors"
)

// checks if a file or directory exists
func PathExists(filepath string) bool {
	_, err := os.Stat(filepath)
	return !os.IsNotExist(err)
}

// Used in CleanPathName to remove illegal characters in a path name
func removeIllegalRuneInPath(r rune) rune {
	if strings.ContainsRune(`\/:*?"<>|`, r) {
		return constants.PATH_PLACEHOLDER_RUNE
	}
	return r
}

// Removes any illegal characters in a path name
// to prevent any error with file I/O using the path name
func CleanPathName(pathName string) string {
	return strings.Map(removeIllegalRuneInPath, pathName)
}

// Returns the directory path for a creator's saved posts based on
// the user's root output directory and the creator's display name.
func GetCreatorFolder(rootOutputDir, creatorName string) string {
	return filepath.Join(rootOutputDir, CleanPathName(creatorName))
}

// WritePostFile writes a post's text content as
// <dirPath>/<sanitized title>.txt with a fixed header block.
// An existing file at that path is overwritten.
func WritePostFile(dirPath, title, postUrl, body string) (string, error) {
	if err := os.MkdirAll(dirPath, constants.DEFAULT_PERMS); err != nil {
		return "", fmt.Errorf(
			"error %d: failed to create directory %s, more info => %w",
			fnderrors.OS_ERROR,
			dirPath,
			err,
		)
	}

	filePath := filepath.Join(dirPath, CleanPathName(title)+".txt")
	var sb strings.Builder
	sb.WriteString("Title: " + title + "\n")
	sb.WriteString("URL: " + postUrl + "\n")
	sb.WriteString(strings.Repeat("=", constants.POST_HEADER_RULE_WIDTH) + "\n\n")
	sb.WriteString(body)

	if err := os.WriteFile(filePath, []byte(sb.String()), 0666); err != nil {
		return "", fmt.Errorf(
			"error %d: failed to write post file to %s, more info => %w",
			fnderrors.OS_ERROR,
			filePath,
			err,
		)
	}
	return filePath, nil
}
