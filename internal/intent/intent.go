// Package intent maps a free-text question to a fixed SQL statement and an
// aggregate topic. Classification happens exactly once per request so the
// query choice, the summary, and the chart can never disagree about what the
// user asked.
package intent

import "strings"

// Table is the one analytics table this service answers questions about.
const Table = "MARKETING_CAMPAIGNS"

// Topic selects which aggregate narrative and chart shape a row set gets.
type Topic string

const (
	TopicCount      Topic = "count"
	TopicROI        Topic = "roi"
	TopicConversion Topic = "conversion"
	TopicCost       Topic = "cost"
	TopicEngagement Topic = "engagement"
	TopicChannel    Topic = "channel"
	TopicTop        Topic = "top"
	TopicGeneric    Topic = "generic"
)

// Query identifies one of the fixed statements the service may run. Every
// literal is baked in at compile time; no user input is ever interpolated
// into SQL, which is what keeps the rule table injection-free.
type Query int

const (
	QueryDefault Query = iota
	QueryHighROI
	QueryTopConversion
	QueryLowCost
	QuerySocialMedia
	QueryEmail
	QuerySearch
	QueryRecent
)

// Classification is the single shared view of one message.
type Classification struct {
	Query Query
	Topic Topic
}

// Classify lower-cases the message once and evaluates both rule tables.
// Matching is plain substring containment; the first rule that matches wins.
func Classify(message string) Classification {
	lowered := strings.ToLower(message)
	return Classification{
		Query: classifyQuery(lowered),
		Topic: classifyTopic(lowered),
	}
}

func classifyQuery(message string) Query {
	switch {
	case containsAny(message, "high roi", "best roi", "top roi"):
		return QueryHighROI
	case strings.Contains(message, "conversion") && containsAny(message, "high", "best"):
		return QueryTopConversion
	case strings.Contains(message, "cost") && containsAny(message, "low", "cheap"):
		return QueryLowCost
	case strings.Contains(message, "social media"):
		return QuerySocialMedia
	case strings.Contains(message, "email"):
		return QueryEmail
	case containsAny(message, "search", "google"):
		return QuerySearch
	case containsAny(message, "recent", "latest"):
		return QueryRecent
	default:
		return QueryDefault
	}
}

func classifyTopic(message string) Topic {
	switch {
	case containsAny(message, "how many", "count"):
		return TopicCount
	case containsAny(message, "roi", "return on investment"):
		return TopicROI
	case strings.Contains(message, "conversion"):
		return TopicConversion
	case strings.Contains(message, "cost"):
		return TopicCost
	case strings.Contains(message, "engagement"):
		return TopicEngagement
	case containsAny(message, "channel", "platform"):
		return TopicChannel
	case containsAny(message, "best", "top", "highest"):
		return TopicTop
	default:
		return TopicGeneric
	}
}

// SQL returns the statement for the query.
func (q Query) SQL() string {
	switch q {
	case QueryHighROI:
		return "SELECT * FROM " + Table + " WHERE ROI > 50 ORDER BY ROI DESC LIMIT 50"
	case QueryTopConversion:
		return "SELECT * FROM " + Table + " ORDER BY CONVERSION_RATE DESC LIMIT 50"
	case QueryLowCost:
		return "SELECT * FROM " + Table + " ORDER BY ACQUISITION_COST ASC LIMIT 50"
	case QuerySocialMedia:
		return "SELECT * FROM " + Table + " WHERE CHANNEL_USED = 'Social Media' LIMIT 100"
	case QueryEmail:
		return "SELECT * FROM " + Table + " WHERE CHANNEL_USED = 'Email' LIMIT 100"
	case QuerySearch:
		return "SELECT * FROM " + Table + " WHERE CHANNEL_USED = 'Search' LIMIT 100"
	case QueryRecent:
		return "SELECT * FROM " + Table + " ORDER BY DATE DESC LIMIT 50"
	default:
		return "SELECT * FROM " + Table + " LIMIT 100"
	}
}

func containsAny(message string, substrings ...string) bool {
	for _, candidate := range substrings {
		if strings.Contains(message, candidate) {
			return true
		}
	}
	return false
}
