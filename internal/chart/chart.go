// Package chart projects a row set into a small chart-library-agnostic
// series for the UI to render.
package chart

import (
	"strings"

	"github.com/campaignchat/campaignchat/internal/intent"
	"github.com/campaignchat/campaignchat/internal/rowset"
)

// MaxPoints bounds every payload for readability.
const MaxPoints = 20

type Kind string

const (
	KindLine Kind = "line"
	KindBar  Kind = "bar"
	KindPie  Kind = "pie"
)

type Point struct {
	X     string  `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label,omitempty"`
}

// Payload is the wire contract the chat UI renders. Labels, when present,
// always runs parallel to Points.
type Payload struct {
	Kind   Kind     `json:"kind"`
	Points []Point  `json:"points"`
	Labels []string `json:"labels,omitempty"`
}

// Project builds a chart for the row set, or nil when nothing sensible can
// be drawn. A nil payload is not an error; the response simply omits it.
func Project(rs rowset.RowSet, topic intent.Topic) *Payload {
	if rs.Empty() {
		return nil
	}
	if topic == intent.TopicChannel {
		return channelBreakdown(rs)
	}

	yColumn, ok := yColumnFor(rs, topic)
	if !ok {
		return nil
	}
	xColumn := xColumnFor(rs)

	limit := min(rs.Len(), MaxPoints)
	points := make([]Point, 0, limit)
	labels := make([]string, 0, limit)
	for _, row := range rs.Rows[:limit] {
		x := row[xColumn].Text()
		// Unparsable cells chart as zero; aggregates exclude them instead,
		// which is why the summary and the chart can disagree on a row.
		y, _ := row[yColumn].Float()
		points = append(points, Point{X: x, Y: y, Label: x})
		labels = append(labels, x)
	}
	return &Payload{Kind: KindBar, Points: points, Labels: labels}
}

// channelBreakdown counts rows per channel in first-encountered order and
// renders them as a pie.
func channelBreakdown(rs rowset.RowSet) *Payload {
	order := make([]string, 0)
	counts := map[string]float64{}
	for _, row := range rs.Rows {
		name := row["channel_used"].Text()
		if name == "" {
			name = "Unknown"
		}
		if _, ok := counts[name]; !ok {
			order = append(order, name)
		}
		counts[name]++
	}

	limit := min(len(order), MaxPoints)
	points := make([]Point, 0, limit)
	labels := make([]string, 0, limit)
	for _, name := range order[:limit] {
		points = append(points, Point{X: name, Y: counts[name], Label: name})
		labels = append(labels, name)
	}
	return &Payload{Kind: KindPie, Points: points, Labels: labels}
}

func yColumnFor(rs rowset.RowSet, topic intent.Topic) (string, bool) {
	preferred := "roi"
	switch topic {
	case intent.TopicConversion:
		preferred = "conversion_rate"
	case intent.TopicCost:
		preferred = "acquisition_cost"
	case intent.TopicEngagement:
		preferred = "engagement_score"
	}
	if rs.HasColumn(preferred) {
		return preferred, true
	}
	return rs.FirstNumericColumn()
}

func xColumnFor(rs rowset.RowSet) string {
	if rs.HasColumn("campaign_type") {
		return "campaign_type"
	}
	for _, column := range rs.Columns {
		if strings.Contains(strings.ToLower(column), "date") {
			return column
		}
	}
	return "campaign_id"
}
