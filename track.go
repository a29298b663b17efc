package keyreduce

import "fmt"

// Track is the animation of one bone or node. Each component is a dense
// sample list; empty components are skipped.
type Track struct {
	Name string `json:"name"`

	// Translation samples are 3-D positions.
	Translation []Sample `json:"translation,omitempty"`

	// Rotation samples are 4-D.
	Rotation []Sample `json:"rotation,omitempty"`

	// Scale samples are 3-D.
	Scale []Sample `json:"scale,omitempty"`
}

// TrackResult holds the reduced components of a track. Components that were
// empty are nil.
type TrackResult struct {
	Name        string  `json:"name"`
	Translation *Result `json:"translation,omitempty"`
	Rotation    *Result `json:"rotation,omitempty"`
	Scale       *Result `json:"scale,omitempty"`

	// TotalInput and TotalOutput sum the key counts of every component.
	TotalInput  int `json:"total_input"`
	TotalOutput int `json:"total_output"`
}

// Ratio returns TotalInput / TotalOutput.
func (r *TrackResult) Ratio() float64 {
	if r.TotalOutput == 0 {
		return 0
	}
	return float64(r.TotalInput) / float64(r.TotalOutput)
}

// CompressTrack reduces each non-empty component of track with the same
// configuration. Components are reduced one after another.
func CompressTrack(track Track, cfg *Config) (*TrackResult, error) {
	res := &TrackResult{Name: track.Name}

	var err error
	if res.Translation, err = reduceComponent(track.Name, "translation", track.Translation, translationDim, cfg); err != nil {
		return nil, err
	}
	if res.Rotation, err = reduceComponent(track.Name, "rotation", track.Rotation, rotationDim, cfg); err != nil {
		return nil, err
	}
	if res.Scale, err = reduceComponent(track.Name, "scale", track.Scale, scaleDim, cfg); err != nil {
		return nil, err
	}

	for _, r := range []*Result{res.Translation, res.Rotation, res.Scale} {
		if r != nil {
			res.TotalInput += r.Stats.InputKeyCount
			res.TotalOutput += r.Stats.OutputKeyCount
		}
	}
	if res.TotalOutput == 0 {
		return nil, fmt.Errorf("%w: track %q has no samples", ErrInvalidInput, track.Name)
	}
	return res, nil
}

// reduceComponent reduces one track component. An empty component yields a
// nil result.
func reduceComponent(track, name string, samples []Sample, dim int, cfg *Config) (*Result, error) {
	if len(samples) == 0 {
		return nil, nil
	}
	if got := samples[0].Value.Dim(); got != dim {
		return nil, fmt.Errorf("%w: track %q %s has %d dimensions, want %d",
			ErrDimensionMismatch, track, name, got, dim)
	}
	r, err := ReduceCurve(samples, cfg)
	if err != nil {
		return nil, fmt.Errorf("track %q %s: %w", track, name, err)
	}
	return r, nil
}

// CompressTracks reduces every track in order and stops at the first error.
func CompressTracks(tracks []Track, cfg *Config) ([]*TrackResult, error) {
	if len(tracks) == 0 {
		return nil, fmt.Errorf("%w: no tracks", ErrInvalidInput)
	}
	out := make([]*TrackResult, len(tracks))
	for i, t := range tracks {
		r, err := CompressTrack(t, cfg)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}
