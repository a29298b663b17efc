package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/tphakala/go-keyreduce"
	"github.com/tphakala/go-keyreduce/internal/vec"
)

// Document is the JSON output of a reduction run.
type Document struct {
	RunID     string                   `json:"run_id"`
	CreatedAt time.Time                `json:"created_at"`
	Source    string                   `json:"source"`
	Config    keyreduce.Config         `json:"config"`
	Stats     keyreduce.ReductionStats `json:"stats"`
	Keys      []keyreduce.Key          `json:"keys"`
}

// NewDocument wraps a result in a document stamped with a fresh run id.
func NewDocument(source string, cfg *keyreduce.Config, res *keyreduce.Result) *Document {
	return &Document{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Source:    source,
		Config:    *cfg,
		Stats:     res.Stats,
		Keys:      res.Keys,
	}
}

// WriteJSON encodes doc as indented JSON.
func WriteJSON(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return nil
}

// Compare builds a comparison of samples against res, evaluating the reduced
// curve at every sample time inside the keyed range. Samples outside it, left
// over from an interval run, are not part of the comparison.
func Compare(title string, samples []keyreduce.Sample, res *keyreduce.Result) *Comparison {
	c := &Comparison{
		Title:    title,
		KeyTimes: make([]float32, len(res.Keys)),
		Keys:     make([]vec.Vec, len(res.Keys)),
	}
	for i, k := range res.Keys {
		c.KeyTimes[i] = k.Time
		c.Keys[i] = k.Value
	}
	if len(res.Keys) == 0 {
		return c
	}

	first := res.Keys[0].Time - keyreduce.TimeEpsilon/2
	last := res.Keys[len(res.Keys)-1].Time + keyreduce.TimeEpsilon/2
	for _, s := range samples {
		if s.Time < first || s.Time > last {
			continue
		}
		c.Times = append(c.Times, s.Time)
		c.Samples = append(c.Samples, s.Value)
		c.Reduced = append(c.Reduced, res.Eval(s.Time))
	}
	return c
}
