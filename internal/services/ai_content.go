package services

import (
	"time"

	"github.com/terraincognita07/lifeboard/internal/models"
)

// Verse and insight texts are fixed per area until a generator backs them.

type Verse struct {
	Reference   string    `json:"reference"`
	Text        string    `json:"text"`
	Area        string    `json:"area"`
	GeneratedAt time.Time `json:"generated_at"`
}

type Insight struct {
	Insight     string    `json:"insight"`
	Area        string    `json:"area"`
	GeneratedAt time.Time `json:"generated_at"`
}

type verseText struct {
	reference string
	text      string
}

var areaVerses = map[string]verseText{
	models.AreaPhysicalHealth:    {"Philippians 4:13", "I can do all things through Christ who strengthens me."},
	models.AreaHobby:             {"Colossians 3:23", "Whatever you do, work heartily, as for the Lord and not for men."},
	models.AreaIncomeExpenses:    {"Proverbs 21:5", "The plans of the diligent lead surely to abundance, but everyone who is hasty comes only to poverty."},
	models.AreaAssetsLiabilities: {"Proverbs 22:7", "The rich rules over the poor, and the borrower is the slave of the lender."},
	models.AreaOneOnOne:          {"Ephesians 4:2-3", "Be completely humble and gentle; be patient, bearing with one another in love."},
	models.AreaFamilyFriends:     {"Proverbs 17:17", "A friend loves at all times, and a brother is born for adversity."},
	models.AreaPolitics:          {"Micah 6:8", "He has told you, O man, what is good; and what does the Lord require of you but to do justice, and to love kindness, and to walk humbly with your God?"},
	models.AreaSpiritual:         {"Psalm 46:10", "Be still, and know that I am God. I will be exalted among the nations, I will be exalted in the earth!"},
}

var defaultVerse = verseText{"Psalm 23:1", "The Lord is my shepherd; I shall not want."}

var areaInsights = map[string]string{
	models.AreaPhysicalHealth:    "Consider setting a consistent bedtime to improve sleep quality and energy levels.",
	models.AreaHobby:             "Schedule 15 minutes of 'play time' with your hobby each day, even if it's just sketching or brainstorming.",
	models.AreaIncomeExpenses:    "Track every expense for one week to identify spending patterns and find easy cuts.",
	models.AreaAssetsLiabilities: "Focus on paying off your highest interest rate debt first (avalanche method) to minimize total interest paid.",
	models.AreaOneOnOne:          "Schedule a weekly 'check-in' conversation with your partner to discuss what's going well and what needs attention.",
	models.AreaFamilyFriends:     "Set monthly reminders to reach out to friends you haven't connected with recently, even just a quick text.",
	models.AreaPolitics:          "Subscribe to your local city council meeting agendas to stay informed about decisions affecting your community.",
	models.AreaSpiritual:         "Start your day with 5 minutes of quiet prayer or meditation before checking your phone.",
}

const defaultInsight = "Keep striving toward your goals in this area. Small consistent steps lead to big changes."

type ContentService struct {
	now func() time.Time
}

func NewContentService() *ContentService {
	return &ContentService{now: time.Now}
}

// Verse returns the verse for area, falling back to a general one for
// unknown areas.
func (service *ContentService) Verse(area string) Verse {
	verse, ok := areaVerses[area]
	if !ok {
		verse = defaultVerse
	}
	return Verse{
		Reference:   verse.reference,
		Text:        verse.text,
		Area:        area,
		GeneratedAt: service.now().UTC(),
	}
}

func (service *ContentService) Insight(area string) Insight {
	text, ok := areaInsights[area]
	if !ok {
		text = defaultInsight
	}
	return Insight{
		Insight:     text,
		Area:        area,
		GeneratedAt: service.now().UTC(),
	}
}
