package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/kohaku-dl/fantia-novel-dl/api/fantia"
	"github.com/kohaku-dl/fantia-novel-dl/configs"
	"github.com/kohaku-dl/fantia-novel-dl/constants"
	"github.com/kohaku-dl/fantia-novel-dl/logger"
	"github.com/kohaku-dl/fantia-novel-dl/parsers"
)

func main() {
	os.Exit(run())
}

func run() (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			logger.MainLogger.Errorf("An unexpected error occurred: %v\n%s", r, debug.Stack())
			exitCode = 1
		}
	}()

	log := logger.MainLogger
	log.Infof("Starting Fantia-Novel-Downloader v%s", constants.VERSION)

	config, err := configs.LoadConfigFile(constants.CONFIG_FILE_NAME)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Infof("Configuration file %q has been created.", constants.CONFIG_FILE_NAME)
			log.Info("Please open the file, fill in your authentication details, and run the program again.")
			return 1
		}
		logger.LogError(err, logger.ERROR)
		return 1
	}
	if err := config.Validate(); err != nil {
		logger.LogError(err, logger.ERROR)
		return 1
	}

	targets, err := parsers.LoadTargets(constants.TARGETS_FILE_NAME)
	if err != nil {
		logger.LogError(err, logger.ERROR)
		log.Infof("Please create %q in the working directory and add target URLs.", constants.TARGETS_FILE_NAME)
		return 1
	}
	if len(targets) == 0 {
		log.Errorf("No valid URLs found in %q.", constants.TARGETS_FILE_NAME)
		return 1
	}
	log.Infof("Loaded %d URL(s) from %q.", len(targets), constants.TARGETS_FILE_NAME)

	dlOptions, err := fantia.NewFantiaDlOptions(context.Background(), config)
	if err != nil {
		logger.LogError(err, logger.ERROR)
		return 1
	}

	if err := os.MkdirAll(config.Settings.RootOutputDir, constants.DEFAULT_PERMS); err != nil {
		log.Errorf("Failed to create root output directory %q: %v", config.Settings.RootOutputDir, err)
		return 1
	}
	if absRoot, err := filepath.Abs(config.Settings.RootOutputDir); err == nil {
		log.Infof("Root save directory: %q", absRoot)
	}
	log.Infof("Download scope: %q", config.Settings.DownloadScope)

	var summary fantia.Summary
	for i, target := range targets {
		log.Infof("===== Processing URL %d/%d: %s =====", i+1, len(targets), target.Url)
		summary = addSummaries(summary, processTarget(target, dlOptions))
	}

	log.Infof(
		"All tasks completed: %d saved, %d outside scope, %d without text, %d failed.",
		summary.Saved,
		summary.SkippedScope,
		summary.SkippedNoText,
		summary.Failed,
	)
	return 0
}

// processTarget runs the collect/fetch pipeline for one target URL.
// A target's failure never stops the processing of subsequent targets.
func processTarget(target parsers.Target, dlOptions *fantia.FantiaDlOptions) fantia.Summary {
	log := logger.MainLogger
	var summary fantia.Summary
	switch target.Kind {
	case parsers.TargetFanclub:
		postIds, err := fantia.CollectPostIds(target.Url, dlOptions)
		if err != nil {
			logger.LogError(err, logger.ERROR)
			log.Warn("Failed to retrieve post IDs for the fan club. Skipping.")
			return summary
		}
		if len(postIds) == 0 {
			log.Warn("No posts found for the fan club. Skipping.")
			return summary
		}
		log.Infof("Starting download of %d individual post(s)...", len(postIds))
		summary = fantia.DlFantiaPosts(postIds, dlOptions)
	case parsers.TargetPost:
		log.Infof("Extracted Post ID: %d.", target.PostId)
		summary = fantia.DlFantiaPosts([]int{target.PostId}, dlOptions)
	default:
		log.Warnf("Unsupported URL format: %s. Skipping.", target.Url)
	}
	return summary
}

func addSummaries(a, b fantia.Summary) fantia.Summary {
	return fantia.Summary{
		Saved:         a.Saved + b.Saved,
		SkippedScope:  a.SkippedScope + b.SkippedScope,
		SkippedNoText: a.SkippedNoText + b.SkippedNoText,
		Failed:        a.Failed + b.Failed,
	}
}
