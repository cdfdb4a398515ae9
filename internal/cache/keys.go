package cache

import (
	"sort"
	"strconv"
	"strings"

	"learnpath/internal/domain"
)

const (
	GlobalKeyPrefix = "learnpath"

	elearningService = "elearning"
	resultsObject    = "results"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// ResultsKey identifies the cached /data response for a filter request.
// Topic order does not change the result set, so topics are sorted.
func ResultsKey(req domain.FilterRequest) string {
	topics := append([]string(nil), req.Topics...)
	sort.Strings(topics)

	typ := req.Type
	if typ == "" {
		typ = "all"
	}
	return GenerateCacheKey(elearningService, resultsObject, typ,
		"s"+strconv.FormatFloat(req.Score, 'f', -1, 64),
		"t"+strconv.FormatFloat(req.Time, 'f', -1, 64),
		strings.Join(topics, ","),
	)
}

// ResultsPrefix matches every key produced by ResultsKey.
func ResultsPrefix() string {
	return strings.Join([]string{GlobalKeyPrefix, elearningService, resultsObject}, ":") + ":"
}
