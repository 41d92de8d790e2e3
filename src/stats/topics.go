package stats

import (
	"sort"

	"github.com/tubetale/tubetale/src/analytics"
)

// TopicShare is a topic with its raw value and its share of the total,
// normalized so the percentages sum to 100.
type TopicShare struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

// NormalizeTopics converts raw topic weights into percentages and sorts them
// by value, highest first. A zero total leaves every percentage at 0.
func NormalizeTopics(topics []analytics.TopicShare) []TopicShare {
	if len(topics) == 0 {
		return nil
	}

	var total float64
	for _, t := range topics {
		total += t.Value
	}

	out := make([]TopicShare, len(topics))
	for i, t := range topics {
		share := TopicShare{Name: t.Name, Value: t.Value}
		if total > 0 {
			share.Percentage = round2(t.Value / total * 100)
		}
		out[i] = share
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out
}
