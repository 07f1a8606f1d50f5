package domain

import "sort"

// AverageMap maps a pressure bucket to the running average of a metric.
// The zero value is ready to use.
type AverageMap struct {
	values map[float64]float64
}

// Bucket is one rendered row of an AverageMap.
type Bucket struct {
	Pressure float64 `json:"pressure"`
	Average  float64 `json:"average"`
}

// Put folds value into bucket. An absent bucket takes the value directly;
// an existing one becomes (current + value) / 2.
func (m *AverageMap) Put(bucket, value float64) {
	if m.values == nil {
		m.values = make(map[float64]float64)
	}
	if current, ok := m.values[bucket]; ok {
		m.values[bucket] = (current + value) / 2
		return
	}
	m.values[bucket] = value
}

// Get returns the average stored under bucket.
func (m *AverageMap) Get(bucket float64) (float64, bool) {
	v, ok := m.values[bucket]
	return v, ok
}

// Len returns the number of buckets.
func (m *AverageMap) Len() int {
	return len(m.values)
}

// Buckets returns all entries sorted by ascending pressure.
func (m *AverageMap) Buckets() []Bucket {
	out := make([]Bucket, 0, len(m.values))
	for k, v := range m.values {
		out = append(out, Bucket{Pressure: k, Average: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Pressure < out[j].Pressure })
	return out
}

// Averages pairs the pressure→move-speed and pressure→radius tables that are
// kept per season and globally.
type Averages struct {
	MoveSpeed AverageMap
	Radius    AverageMap
}

// Observe folds a point into both tables. Points at or below MinPressure are
// ignored; move speed and radius only count when positive.
func (a *Averages) Observe(p Point) {
	if p.Pressure <= MinPressure {
		return
	}
	bucket := float64(p.Pressure)
	if p.MoveSpeed > 0 {
		a.MoveSpeed.Put(bucket, float64(p.MoveSpeed))
	}
	if p.Radius7 > 0 {
		a.Radius.Put(bucket, p.Radius7)
	}
}
