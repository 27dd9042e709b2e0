// pkg/api/calibration_v1.go
package api

// CalibrationV1 is the stable JSON schema of derived detector thresholds.
type CalibrationV1 struct {
	Red        float64 `json:"red"`
	Connection float64 `json:"connection"`
	Vectors    int     `json:"vectors"` // interior score vectors pooled
	Weights    int     `json:"weights"` // two-way weights pooled
	Clamped    bool    `json:"clamped,omitempty"`
}
