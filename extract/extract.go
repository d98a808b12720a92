// Package extract turns raw model text into validated values. Model
// output is unreliable, so parsing is two-stage: strict JSON first,
// then a bounded bracket-pattern recovery parse. Nothing here panics;
// both stages failing yields an empty result and an error for the
// caller to surface.
package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"newsrec/config"
	"newsrec/types"
)

var (
	// ErrNotJSON means neither the strict parse nor the recovery parse
	// produced valid JSON.
	ErrNotJSON = errors.New("model response is not valid JSON")

	// ErrNotArray means the response parsed but the top level is not an
	// array.
	ErrNotArray = errors.New("model response is not a JSON array")
)

var (
	fenceRe       = regexp.MustCompile("```json\\s*|```\\s*")
	objectArrayRe = regexp.MustCompile(`(?s)\[\s*\{.*?\}\s*\]`)
	stringArrayRe = regexp.MustCompile(`(?s)\[\s*".*?"\s*\]`)
)

// stripFences removes leading/trailing markdown code-fence artifacts,
// labeled ("```json") or bare.
func stripFences(raw string) string {
	return strings.TrimSpace(fenceRe.ReplaceAllString(strings.TrimSpace(raw), ""))
}

// rejection records why a parsed element was discarded.
type rejection struct {
	index  int
	reason string
}

// Recommendations extracts at most MaxRecommendations validated
// recommendations from raw model text. excludeTitle is the reference
// article's own title; exact title equality is the sole exclusion test.
func Recommendations(raw, excludeTitle string) ([]types.Recommendation, error) {
	elements, err := parseArray(stripFences(raw), objectArrayRe)
	if err != nil {
		return nil, err
	}

	var (
		recs     []types.Recommendation
		rejected []rejection
	)
	for i, el := range elements {
		rec, reason := validateRecommendation(el, excludeTitle)
		if reason != "" {
			rejected = append(rejected, rejection{index: i, reason: reason})
			continue
		}
		recs = append(recs, rec)
		if len(recs) == config.MaxRecommendations {
			break
		}
	}

	for _, r := range rejected {
		log.Printf("extract: dropped recommendation %d: %s", r.index, r.reason)
	}
	return recs, nil
}

// Keywords extracts a list of search keyword strings from raw model
// text. Same two-stage parse, no element filtering beyond type.
func Keywords(raw string) ([]string, error) {
	elements, err := parseArray(stripFences(raw), stringArrayRe)
	if err != nil {
		return nil, err
	}

	var keywords []string
	for _, el := range elements {
		if s, ok := el.(string); ok && strings.TrimSpace(s) != "" {
			keywords = append(keywords, strings.TrimSpace(s))
		}
	}
	return keywords, nil
}

// parseArray runs the strict parse, then the recovery parse against the
// first substring matching the given bracket pattern.
func parseArray(cleaned string, island *regexp.Regexp) ([]interface{}, error) {
	var top interface{}
	if err := json.Unmarshal([]byte(cleaned), &top); err != nil {
		match := island.FindString(cleaned)
		if match == "" {
			return nil, fmt.Errorf("%w: %v", ErrNotJSON, err)
		}
		if err := json.Unmarshal([]byte(match), &top); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNotJSON, err)
		}
	}

	elements, ok := top.([]interface{})
	if !ok {
		return nil, ErrNotArray
	}
	return elements, nil
}

func validateRecommendation(el interface{}, excludeTitle string) (types.Recommendation, string) {
	obj, ok := el.(map[string]interface{})
	if !ok {
		return types.Recommendation{}, "not an object"
	}

	title, _ := obj["title"].(string)
	link, _ := obj["link"].(string)

	switch {
	case title == "":
		return types.Recommendation{}, "missing or empty title"
	case !strings.HasPrefix(link, "http"):
		return types.Recommendation{}, fmt.Sprintf("link %q is not a complete URL", link)
	case title == excludeTitle:
		return types.Recommendation{}, "matches the reference article title"
	}
	return types.Recommendation{Title: title, Link: link}, ""
}
