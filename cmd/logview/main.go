// Copyright The CloudPanel API Authors
// SPDX-License-Identifier: Apache-2.0

// Command logview runs one query against the configured log sources and
// prints the resulting page as JSON.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	logview "github.com/josephgodwinkimani/cloudpanel-api-sub001"
	"github.com/josephgodwinkimani/cloudpanel-api-sub001/entry"
)

func main() {
	var (
		configPath = flag.String("config", "logview.yaml", "path to the source catalog config")
		page       = flag.Int("page", entry.DefaultPage, "page to return")
		limit      = flag.Int("limit", entry.DefaultLimit, "entries per page")
		level      = flag.String("level", "", "exact level filter")
		typ        = flag.String("type", "", "exact source type filter")
		action     = flag.String("action", "", "exact action filter")
		search     = flag.String("search", "", "case-insensitive substring filter")
		summary    = flag.Bool("summary", false, "include per-level stats for the page")
	)
	flag.Parse()

	if err := run(*configPath, entry.QueryOptions{
		Page:   *page,
		Limit:  *limit,
		Level:  *level,
		Type:   *typ,
		Action: *action,
		Search: *search,
	}, *summary); err != nil {
		fmt.Fprintf(os.Stderr, "logview: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, opts entry.QueryOptions, summary bool) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	cfg, err := logview.LoadConfig(configPath)
	if err != nil {
		return err
	}

	engine, err := logview.New(cfg, logger.Sugar())
	if err != nil {
		return err
	}

	ctx := context.Background()
	var result any
	if summary {
		result = engine.Summary(ctx, opts)
	} else {
		result = engine.Query(ctx, opts)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
