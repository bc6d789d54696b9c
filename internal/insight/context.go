package insight

import "time"

// CoachContext is the aggregation root handed to the coaching feature and the
// prompt formatter. It is built fresh per request and never mutated after
// assembly; every section is either fully populated or left at its zero
// "unknown" default.
type CoachContext struct {
	GeneratedFor      uint                 `json:"generatedFor"`
	User              PersonContext        `json:"user"`
	Partner           *PersonContext       `json:"partner,omitempty"`
	Relationship      *RelationshipContext `json:"relationship,omitempty"`
	Assessment        *AssessmentContext   `json:"assessment,omitempty"`
	PartnerAssessment *AssessmentContext   `json:"partnerAssessment,omitempty"`
	CheckIns          *CheckInContext      `json:"checkins,omitempty"`
	PartnerCheckIns   *CheckInContext      `json:"partnerCheckins,omitempty"`
	Dates             *DatesContext        `json:"dates,omitempty"`
	Flirts            []FlirtSummary       `json:"flirts,omitempty"`
	TimelineCount     int64                `json:"timelineCount"`
}

type PersonContext struct {
	UserID             uint     `json:"userId"`
	Name               string   `json:"name"`
	NameSource         string   `json:"nameSource,omitempty"`
	LoveLanguages      []string `json:"loveLanguages,omitempty"`
	LoveLanguageSource string   `json:"loveLanguageSource,omitempty"`
	Hobbies            string   `json:"hobbies,omitempty"`
	StressResponse     string   `json:"stressResponse,omitempty"`
	Values             string   `json:"values,omitempty"`
}

type RelationshipContext struct {
	CoupleID    uint       `json:"coupleId"`
	HealthScore *int       `json:"healthScore,omitempty"`
	Anniversary *time.Time `json:"anniversary,omitempty"`
	Alignment   *int       `json:"alignment,omitempty"`
}

type AssessmentContext struct {
	ModuleScores []ModuleScore `json:"moduleScores"`
}

type CheckInContext struct {
	Streak int             `json:"streak"`
	Report PatternReport   `json:"report"`
	Recent []CheckInSample `json:"recent"`
}

type DateSummary struct {
	Title       string    `json:"title"`
	Location    string    `json:"location,omitempty"`
	ScheduledAt time.Time `json:"scheduledAt"`
}

type DatesContext struct {
	Upcoming *DateSummary  `json:"upcoming,omitempty"`
	Recent   []DateSummary `json:"recent,omitempty"`
}

type FlirtSummary struct {
	From    string    `json:"from"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sentAt"`
}

// FieldCandidate is one step of an ordered fallback chain: a value plus the
// name of the source it came from.
type FieldCandidate struct {
	Source string
	Value  string
}

// ResolvedField carries the winning value together with which source supplied
// it, so precedence bugs show up in logs instead of staying invisible.
type ResolvedField struct {
	Value  string
	Source string
}

// ResolveFirst walks candidates in the given order and returns the first
// non-empty value. Precedence is positional and nothing else; callers document
// their chain by how they build the slice.
func ResolveFirst(candidates ...FieldCandidate) ResolvedField {
	for _, c := range candidates {
		if c.Value != "" {
			return ResolvedField{Value: c.Value, Source: c.Source}
		}
	}
	return ResolvedField{}
}
