package domain

// Results is a point-in-time copy of the loaded counts. A missing key means
// the value has not been loaded yet, which is different from a zero count.
type Results struct {
	Metrics map[MetricID]int64
	Tags    map[TagName]int64
}

// NewResults returns an empty result set
func NewResults() Results {
	return Results{
		Metrics: make(map[MetricID]int64),
		Tags:    make(map[TagName]int64),
	}
}

// Metric returns the count of a metric and whether it has been loaded
func (r Results) Metric(id MetricID) (int64, bool) {
	v, ok := r.Metrics[id]
	return v, ok
}

// Tag returns the reference count of a tag and whether it has been loaded
func (r Results) Tag(tag TagName) (int64, bool) {
	v, ok := r.Tags[tag]
	return v, ok
}

// Get returns the value stored under a load key
func (r Results) Get(k Key) (int64, bool) {
	if k.Kind == KeyTag {
		return r.Tag(k.Tag)
	}
	return r.Metric(k.Metric)
}

// Complete reports whether every catalog metric and tag has a value
func (r Results) Complete() bool {
	for _, k := range AllKeys() {
		if _, ok := r.Get(k); !ok {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of r
func (r Results) Clone() Results {
	c := NewResults()
	for k, v := range r.Metrics {
		c.Metrics[k] = v
	}
	for k, v := range r.Tags {
		c.Tags[k] = v
	}
	return c
}
