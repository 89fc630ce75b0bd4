// Package summary turns a row set into a one-paragraph answer. Which
// aggregate narrative is produced depends on the topic the shared classifier
// derived from the user's question.
package summary

import (
	"fmt"
	"sort"

	"github.com/campaignchat/campaignchat/internal/intent"
	"github.com/campaignchat/campaignchat/internal/rowset"
)

// NoData is the fixed sentence returned whenever a query produced zero rows.
const NoData = "I couldn't find any data matching your query. Please try a different question."

func Summarize(rs rowset.RowSet, topic intent.Topic) string {
	if rs.Empty() {
		return NoData
	}
	switch topic {
	case intent.TopicCount:
		return fmt.Sprintf("I found %d campaigns matching your question.", rs.Len())
	case intent.TopicROI:
		return roiSummary(rs)
	case intent.TopicConversion:
		return conversionSummary(rs)
	case intent.TopicCost:
		return costSummary(rs)
	case intent.TopicEngagement:
		return engagementSummary(rs)
	case intent.TopicChannel:
		return channelSummary(rs)
	case intent.TopicTop:
		return topCampaignSummary(rs)
	default:
		return genericSummary(rs)
	}
}

func roiSummary(rs rowset.RowSet) string {
	values := rs.Floats("roi")
	if len(values) == 0 {
		return genericSummary(rs)
	}
	mean, low, high := describe(values)
	return fmt.Sprintf("I analyzed %d campaigns. Average ROI: %.2f%%, Highest ROI: %.2f%%, Lowest ROI: %.2f%%.",
		rs.Len(), mean, high, low)
}

func conversionSummary(rs rowset.RowSet) string {
	values := rs.Floats("conversion_rate")
	if len(values) == 0 {
		return genericSummary(rs)
	}
	mean, _, high := describe(values)
	return fmt.Sprintf("Across %d campaigns the average conversion rate is %.2f%%, with the best campaign converting at %.2f%%.",
		rs.Len(), mean, high)
}

func costSummary(rs rowset.RowSet) string {
	values := rs.Floats("acquisition_cost")
	if len(values) == 0 {
		return genericSummary(rs)
	}
	total := 0.0
	for _, value := range values {
		total += value
	}
	return fmt.Sprintf("The average acquisition cost is $%.2f per campaign, with $%.2f spent across %d campaigns.",
		total/float64(len(values)), total, rs.Len())
}

func engagementSummary(rs rowset.RowSet) string {
	values := rs.Floats("engagement_score")
	if len(values) == 0 {
		return genericSummary(rs)
	}
	mean, _, _ := describe(values)
	return fmt.Sprintf("The average engagement score is %.2f across %d campaigns.", mean, rs.Len())
}

func channelSummary(rs rowset.RowSet) string {
	type channelCount struct {
		name  string
		count int
		first int
	}
	seen := map[string]int{}
	counts := make([]channelCount, 0)
	for i, row := range rs.Rows {
		name := row["channel_used"].Text()
		if name == "" {
			name = "Unknown"
		}
		if at, ok := seen[name]; ok {
			counts[at].count++
			continue
		}
		seen[name] = len(counts)
		counts = append(counts, channelCount{name: name, count: 1, first: i})
	}
	// Descending by frequency, ties broken by first appearance.
	sort.SliceStable(counts, func(a, b int) bool {
		if counts[a].count != counts[b].count {
			return counts[a].count > counts[b].count
		}
		return counts[a].first < counts[b].first
	})
	top := counts[0]
	return fmt.Sprintf("%s is the most used channel (%d campaigns), out of %d distinct channels in the results.",
		top.name, top.count, len(counts))
}

func topCampaignSummary(rs rowset.RowSet) string {
	bestIndex := -1
	bestROI := 0.0
	for i, row := range rs.Rows {
		roi, ok := row["roi"].Float()
		if !ok {
			continue
		}
		// Strictly greater, so the first row keeps a tied maximum.
		if bestIndex == -1 || roi > bestROI {
			bestIndex = i
			bestROI = roi
		}
	}
	if bestIndex == -1 {
		return genericSummary(rs)
	}
	name := rs.Rows[bestIndex]["campaign_type"].Text()
	if name == "" {
		name = rs.Rows[bestIndex]["campaign_id"].Text()
	}
	return fmt.Sprintf("The top performer is the %q campaign with an ROI of %.2f%%.", name, bestROI)
}

func genericSummary(rs rowset.RowSet) string {
	return fmt.Sprintf("I found %d campaigns. Try asking: \"What is the average ROI?\", \"Which channel performs best?\", or \"Show me the campaigns with the highest conversion rates.\"", rs.Len())
}

func describe(values []float64) (mean, low, high float64) {
	low, high = values[0], values[0]
	sum := 0.0
	for _, value := range values {
		sum += value
		if value < low {
			low = value
		}
		if value > high {
			high = value
		}
	}
	return sum / float64(len(values)), low, high
}
