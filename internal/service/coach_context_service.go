package service

import (
	"context"
	"couple_coach_backend/internal/insight"
	"couple_coach_backend/internal/model"
	"couple_coach_backend/internal/util"
	"couple_coach_backend/pkg/monitoring"
	"time"

	"go.uber.org/zap"
)

// Narrow read interfaces keep the aggregator testable without a database; the
// gorm repositories satisfy them as-is.
type userReader interface {
	FindByID(id uint) (*model.User, error)
}

type preferenceReader interface {
	FindByUserID(userID uint) (*model.UserPreference, error)
}

type coupleReader interface {
	FindActiveByMember(userID uint) (*model.Couple, error)
}

type attemptReader interface {
	ListByUser(userID uint) ([]model.AssessmentAttempt, error)
}

type checkInReader interface {
	FindSince(userID uint, since time.Time) ([]model.CheckIn, error)
	RecentDays(userID uint, limit int) ([]time.Time, error)
}

type healthReader interface {
	Latest(coupleID uint) (*model.HealthScore, error)
}

type dateReader interface {
	NextUpcoming(coupleID uint, now time.Time) (*model.DateEvent, error)
	Recent(coupleID uint, now time.Time, limit int) ([]model.DateEvent, error)
}

type flirtReader interface {
	Recent(coupleID uint, limit int) ([]model.Flirt, error)
}

type timelineReader interface {
	CountByCouple(coupleID uint) (int64, error)
}

const (
	contextRecentDates    = 3
	contextRecentFlirts   = 5
	contextStreakLookback = 400
)

// CoachContextService assembles everything the coaching prompt needs about a
// user. The owner's account record is the only read that can fail the whole
// build; every other branch degrades to "absent" so one slow or broken table
// never takes coaching down with it.
type CoachContextService struct {
	Users       userReader
	Preferences preferenceReader
	Couples     coupleReader
	Attempts    attemptReader
	CheckIns    checkInReader
	Health      healthReader
	Dates       dateReader
	Flirts      flirtReader
	Timeline    timelineReader
	Log         *zap.Logger
}

func NewCoachContextService(
	users userReader,
	preferences preferenceReader,
	couples coupleReader,
	attempts attemptReader,
	checkIns checkInReader,
	health healthReader,
	dates dateReader,
	flirts flirtReader,
	timeline timelineReader,
	log *zap.Logger,
) *CoachContextService {
	return &CoachContextService{
		Users:       users,
		Preferences: preferences,
		Couples:     couples,
		Attempts:    attempts,
		CheckIns:    checkIns,
		Health:      health,
		Dates:       dates,
		Flirts:      flirts,
		Timeline:    timeline,
		Log:         log,
	}
}

// BuildContext resolves the couple link first (partner reads depend on it),
// then fans the remaining reads out concurrently.
func (s *CoachContextService) BuildContext(ctx context.Context, userID uint) (*insight.CoachContext, error) {
	start := time.Now()
	defer func() {
		monitoring.ContextBuildDuration.Observe(time.Since(start).Seconds())
	}()

	user, err := s.Users.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	var couple *model.Couple
	var partnerID uint
	if c, err := s.Couples.FindActiveByMember(userID); err == nil {
		couple = c
		partnerID = c.PartnerOf(userID)
	}

	var (
		ownPref, partnerPref       *model.UserPreference
		partner                    *model.User
		ownAttempts, partnerAtts   []model.AssessmentAttempt
		ownSamples, partnerSamples []insight.CheckInSample
		ownStreak, partnerStreak   int
		health                     *model.HealthScore
		dates                      *insight.DatesContext
		flirts                     []model.Flirt
		timelineCount              int64
	)

	branches := []util.Branch{
		{Name: "preferences", Run: func(context.Context) error {
			p, err := s.Preferences.FindByUserID(userID)
			if err != nil {
				return err
			}
			ownPref = p
			return nil
		}},
		{Name: "assessment", Run: func(context.Context) error {
			attempts, err := s.Attempts.ListByUser(userID)
			if err != nil {
				return err
			}
			ownAttempts = attempts
			return nil
		}},
		{Name: "checkins", Run: func(context.Context) error {
			samples, streak, err := s.readCheckIns(userID)
			if err != nil {
				return err
			}
			ownSamples, ownStreak = samples, streak
			return nil
		}},
	}

	if partnerID != 0 {
		branches = append(branches,
			util.Branch{Name: "partner", Run: func(context.Context) error {
				p, err := s.Users.FindByID(partnerID)
				if err != nil {
					return err
				}
				partner = p
				if pref, err := s.Preferences.FindByUserID(partnerID); err == nil {
					partnerPref = pref
				}
				return nil
			}},
			util.Branch{Name: "partner-assessment", Run: func(context.Context) error {
				attempts, err := s.Attempts.ListByUser(partnerID)
				if err != nil {
					return err
				}
				partnerAtts = attempts
				return nil
			}},
			util.Branch{Name: "partner-checkins", Run: func(context.Context) error {
				samples, streak, err := s.readCheckIns(partnerID)
				if err != nil {
					return err
				}
				partnerSamples, partnerStreak = samples, streak
				return nil
			}},
		)
	}

	if couple != nil {
		coupleID := couple.ID
		branches = append(branches,
			util.Branch{Name: "health", Run: func(context.Context) error {
				h, err := s.Health.Latest(coupleID)
				if err != nil {
					return err
				}
				health = h
				return nil
			}},
			util.Branch{Name: "dates", Run: func(context.Context) error {
				d, err := s.readDates(coupleID)
				if err != nil {
					return err
				}
				dates = d
				return nil
			}},
			util.Branch{Name: "flirts", Run: func(context.Context) error {
				f, err := s.Flirts.Recent(coupleID, contextRecentFlirts)
				if err != nil {
					return err
				}
				flirts = f
				return nil
			}},
			util.Branch{Name: "timeline", Run: func(context.Context) error {
				count, err := s.Timeline.CountByCouple(coupleID)
				if err != nil {
					return err
				}
				timelineCount = count
				return nil
			}},
		)
	}

	util.FanOut(ctx, s.Log, branches...)

	out := &insight.CoachContext{
		GeneratedFor:  userID,
		User:          buildPersona(user, ownPref, ownAttempts),
		TimelineCount: timelineCount,
	}

	if partner != nil {
		persona := buildPersona(partner, partnerPref, partnerAtts)
		out.Partner = &persona
	}

	if couple != nil {
		rel := &insight.RelationshipContext{
			CoupleID:    couple.ID,
			Anniversary: couple.Anniversary,
		}
		if health != nil {
			score := health.Score
			rel.HealthScore = &score
		}
		if len(ownSamples) > 0 && len(partnerSamples) > 0 {
			alignment := insight.AlignmentScore(ownSamples, partnerSamples)
			rel.Alignment = &alignment
		}
		out.Relationship = rel
	}

	if scores := scoresFromAttempts(ownAttempts); len(scores) > 0 {
		out.Assessment = &insight.AssessmentContext{ModuleScores: scores}
	}
	if scores := scoresFromAttempts(partnerAtts); len(scores) > 0 {
		out.PartnerAssessment = &insight.AssessmentContext{ModuleScores: scores}
	}

	if len(ownSamples) > 0 || ownStreak > 0 {
		out.CheckIns = &insight.CheckInContext{
			Streak: ownStreak,
			Report: insight.AnalyzePatterns(ownSamples),
			Recent: ownSamples,
		}
	}
	if len(partnerSamples) > 0 || partnerStreak > 0 {
		out.PartnerCheckIns = &insight.CheckInContext{
			Streak: partnerStreak,
			Report: insight.AnalyzePatterns(partnerSamples),
			Recent: partnerSamples,
		}
	}

	out.Dates = dates
	out.Flirts = flirtSummaries(flirts, user, partner)

	return out, nil
}

func (s *CoachContextService) readCheckIns(userID uint) ([]insight.CheckInSample, int, error) {
	since := time.Now().AddDate(0, 0, -insight.DefaultPatternWindowDays)
	checkins, err := s.CheckIns.FindSince(userID, since)
	if err != nil {
		return nil, 0, err
	}

	streak := 0
	if days, err := s.CheckIns.RecentDays(userID, contextStreakLookback); err == nil {
		streak = insight.CurrentStreak(days, insight.AnchorYesterday, time.Now())
	}

	return SamplesFromCheckIns(checkins), streak, nil
}

func (s *CoachContextService) readDates(coupleID uint) (*insight.DatesContext, error) {
	now := time.Now()
	out := &insight.DatesContext{}

	if upcoming, err := s.Dates.NextUpcoming(coupleID, now); err == nil {
		out.Upcoming = &insight.DateSummary{
			Title:       upcoming.Title,
			Location:    upcoming.Location,
			ScheduledAt: upcoming.ScheduledAt,
		}
	}

	recent, err := s.Dates.Recent(coupleID, now, contextRecentDates)
	if err != nil {
		return nil, err
	}
	for _, event := range recent {
		out.Recent = append(out.Recent, insight.DateSummary{
			Title:       event.Title,
			Location:    event.Location,
			ScheduledAt: event.ScheduledAt,
		})
	}

	if out.Upcoming == nil && len(out.Recent) == 0 {
		return nil, nil
	}
	return out, nil
}

// buildPersona applies the ordered fallbacks: display name prefers the account
// record over the preference profile name, love languages prefer the ranked
// assessment over the legacy single preference value.
func buildPersona(user *model.User, pref *model.UserPreference, attempts []model.AssessmentAttempt) insight.PersonContext {
	persona := insight.PersonContext{UserID: user.ID}

	profileName := ""
	if pref != nil {
		profileName = pref.ProfileName
		persona.Hobbies = pref.Hobbies
		persona.StressResponse = pref.StressResponse
		persona.Values = pref.Values
	}
	name := insight.ResolveFirst(
		insight.FieldCandidate{Source: "account", Value: user.Name},
		insight.FieldCandidate{Source: "preferences", Value: profileName},
	)
	persona.Name, persona.NameSource = name.Value, name.Source

	if languages := loveLanguagesFromAttempts(attempts); len(languages) > 0 {
		persona.LoveLanguages = languages
		persona.LoveLanguageSource = "assessment"
	} else if pref != nil && pref.LoveLanguage != "" {
		persona.LoveLanguages = []string{pref.LoveLanguage}
		persona.LoveLanguageSource = "preferences"
	}

	return persona
}

func scoresFromAttempts(attempts []model.AssessmentAttempt) []insight.ModuleScore {
	var scores []insight.ModuleScore
	for _, attempt := range attempts {
		module, ok := insight.ModuleByID(attempt.ModuleID)
		if !ok {
			continue
		}
		answers := insight.ParseAnswerSet(attempt.Answers, module)
		scores = append(scores, insight.ScoreModule(module, answers))
	}
	return scores
}

func loveLanguagesFromAttempts(attempts []model.AssessmentAttempt) []string {
	for _, attempt := range attempts {
		if attempt.ModuleID != insight.LoveLanguageModuleID {
			continue
		}
		module, ok := insight.ModuleByID(attempt.ModuleID)
		if !ok {
			return nil
		}
		answers := insight.ParseAnswerSet(attempt.Answers, module)
		return insight.LoveLanguagesFromAnswers(answers)
	}
	return nil
}

func flirtSummaries(flirts []model.Flirt, user *model.User, partner *model.User) []insight.FlirtSummary {
	var out []insight.FlirtSummary
	for _, f := range flirts {
		from := "partner"
		switch {
		case f.SenderID == user.ID:
			from = user.Name
		case partner != nil && f.SenderID == partner.ID:
			from = partner.Name
		}
		out = append(out, insight.FlirtSummary{
			From:    from,
			Message: f.Message,
			SentAt:  f.CreatedAt,
		})
	}
	return out
}
