package domain

// KeyKind distinguishes metric load keys from tag load keys
type KeyKind int

const (
	KeyMetric KeyKind = iota
	KeyTag
)

// Key identifies one independently loaded value. Metric and tag keys never
// compare equal, even when the metric id and tag name are spelled the same.
type Key struct {
	Kind   KeyKind
	Metric MetricID
	Tag    TagName
}

// MetricKey returns the load key of a metric
func MetricKey(id MetricID) Key {
	return Key{Kind: KeyMetric, Metric: id}
}

// TagKey returns the load key of a tag
func TagKey(tag TagName) Key {
	return Key{Kind: KeyTag, Tag: tag}
}

func (k Key) String() string {
	if k.Kind == KeyTag {
		return "tag:" + string(k.Tag)
	}
	return "metric:" + string(k.Metric)
}

// Valid reports whether the key names a catalog entry
func (k Key) Valid() bool {
	switch k.Kind {
	case KeyMetric:
		return k.Metric.Valid()
	case KeyTag:
		return k.Tag.Valid()
	default:
		return false
	}
}

// AllKeys returns every metric key followed by every tag key
func AllKeys() []Key {
	keys := make([]Key, 0, len(Metrics)+len(Tags))
	for _, id := range Metrics {
		keys = append(keys, MetricKey(id))
	}
	for _, t := range Tags {
		keys = append(keys, TagKey(t))
	}
	return keys
}
