// Command foodsearch is an interactive food lookup. Every line read from
// stdin is treated as the current content of a search box: lines typed in
// quick succession collapse into one request, and lines shorter than the
// minimum query length clear the results.
package main

import (
	"alcyxob/fittrack/internal/config"
	"alcyxob/fittrack/internal/debounce"
	"alcyxob/fittrack/internal/domain"
	"alcyxob/fittrack/internal/logging"
	"alcyxob/fittrack/internal/provider/edamam"
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/coocood/freecache"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	configDir := flag.String("config", ".", "directory holding config.yaml")
	maxResults := flag.Int("n", 10, "max results to print")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("could not load .env file: %s", err)
	}
	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("could not load config: %s", err)
	}
	logging.Setup(logging.SetupParams{
		LogFileName:   cfg.Log.File,
		LogToStdout:   false,
		LogLevel:      cfg.Log.Level,
		LogFormatJSON: cfg.Log.JSON,
	})
	if cfg.Nutrition.AppID == "" || cfg.Nutrition.AppKey == "" {
		log.Fatalln("nutrition.app_id and nutrition.app_key must be set (NUTRITION_APP_ID, NUTRITION_APP_KEY)")
	}

	client := &edamam.Client{
		AppID:      cfg.Nutrition.AppID,
		AppKey:     cfg.Nutrition.AppKey,
		BaseURL:    cfg.Nutrition.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.Nutrition.Timeout},
		Cache:      freecache.NewCache(cfg.Cache.SizeMB * 1024 * 1024),
		CacheTTL:   cfg.Nutrition.CacheTTL,
	}

	minLen := cfg.Search.MinQueryLength
	if minLen <= 0 {
		minLen = debounce.DefaultMinQueryLength
	}

	var outMu sync.Mutex
	gate := debounce.NewSearchGate(debounce.GateConfig[domain.FoodHint]{
		Delay:          cfg.Search.Debounce,
		MinQueryLength: minLen,
		Search:         client.Search,
		OnResults: func(query string, hints []domain.FoodHint) {
			outMu.Lock()
			defer outMu.Unlock()
			printResults(os.Stdout, query, hints, minLen, *maxResults)
		},
		OnError: func(query string, err error) {
			outMu.Lock()
			defer outMu.Unlock()
			if errors.Is(err, edamam.ErrRateLimited) {
				fmt.Fprintf(os.Stdout, "%q: rate limited, try again shortly\n", query)
				return
			}
			fmt.Fprintf(os.Stdout, "%q: search failed: %s\n", query, err)
		},
	})

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		gate.Input(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		log.Errorf("reading stdin: %s", err)
	}
	// stdin is done: search whatever is still waiting out its quiet period.
	gate.Flush()
	gate.Close()
}

func printResults(w io.Writer, query string, hints []domain.FoodHint, minLen, max int) {
	if len(hints) == 0 {
		if utf8.RuneCountInString(strings.TrimSpace(query)) < minLen {
			fmt.Fprintln(w, "(cleared)")
		} else {
			fmt.Fprintf(w, "%q: no results\n", query)
		}
		return
	}
	fmt.Fprintf(w, "%q: %d results\n", query, len(hints))
	for i, h := range hints {
		if i == max {
			break
		}
		fmt.Fprintf(w, "  %-40s %s\n", h.Label, formatNutrients(h.Nutrients))
	}
}

func formatNutrients(n domain.Nutrients) string {
	return fmt.Sprintf("%s kcal  P %s  F %s  C %s", num(n.Calories), num(n.Protein), num(n.Fat), num(n.Carbs))
}

func num(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}
