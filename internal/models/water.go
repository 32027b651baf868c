package models

import "time"

// WaterLog holds the day's water intake state and its configuration
type WaterLog struct {
	IntakeMl     int        `json:"intakeMl"`
	TargetMl     int        `json:"targetMl"`
	SelectedSize int        `json:"selectedSize"`
	Sizes        []int      `json:"sizes"`
	LastIntakeAt *time.Time `json:"lastIntakeAt,omitempty"`
}

// Progress returns intake as a fraction of the target, capped at 1.0
func (w *WaterLog) Progress() float64 {
	if w.TargetMl <= 0 {
		return 0
	}
	p := float64(w.IntakeMl) / float64(w.TargetMl)
	if p > 1 {
		return 1
	}
	return p
}
