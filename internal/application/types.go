package application

import (
	"fmt"

	"roamstats/internal/domain"
)

// Re-export domain types for use by adapters
type (
	MetricID = domain.MetricID
	TagName  = domain.TagName
	Key      = domain.Key
	Results  = domain.Results
)

// ParseKey resolves a metric id or tag name typed by a user. Metric ids win
// when a name is valid as both.
func ParseKey(s string) (domain.Key, error) {
	if id := domain.MetricID(s); id.Valid() {
		return domain.MetricKey(id), nil
	}
	if tag := domain.TagName(s); tag.Valid() {
		return domain.TagKey(tag), nil
	}
	return domain.Key{}, fmt.Errorf("%w or tag: %s", ErrUnknownMetric, s)
}

// ParseMetric resolves a metric id typed by a user
func ParseMetric(s string) (domain.MetricID, error) {
	id := domain.MetricID(s)
	if !id.Valid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownMetric, s)
	}
	return id, nil
}

// ParseTag resolves a tag typed by a user
func ParseTag(s string) (domain.TagName, error) {
	tag := domain.TagName(s)
	if !tag.Valid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownTag, s)
	}
	return tag, nil
}
