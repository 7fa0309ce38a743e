package types

// HistoryRecord is one successful evaluation. The JSON field names match the
// persisted history format: a most-recent-last array of {exp, res}.
type HistoryRecord struct {
	Expression string  `json:"exp"`
	Result     float64 `json:"res"`
}
