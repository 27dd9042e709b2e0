// pkg/api/summary_v1.go
package api

// ConStatV1 is the stable JSON schema of one series summary.
type ConStatV1 struct {
	N      int     `json:"n"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std"`
}

// SummaryV1 is the stable JSON schema of a statistics report.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type SummaryV1 struct {
	LeftToRight ConStatV1 `json:"left_to_right"`
	RightToLeft ConStatV1 `json:"right_to_left"`
	Average     ConStatV1 `json:"average"`
	Ratio       ConStatV1 `json:"ratio"`

	RTs         int `json:"rts"`
	Skipped     int `json:"skipped"`
	TwoWay      int `json:"two_way"`
	LeftOnly    int `json:"left_only"`
	RightOnly   int `json:"right_only"`
	Unconnected int `json:"unconnected"`
	Ambiguous   int `json:"ambiguous,omitempty"`

	OneWayFraction float64 `json:"one_way_fraction"`
	MissedFraction float64 `json:"missed_fraction"`
}
