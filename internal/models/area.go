package models

const (
	AreaPhysicalHealth    = "physical_health"
	AreaHobby             = "hobby"
	AreaIncomeExpenses    = "income_expenses"
	AreaAssetsLiabilities = "assets_liabilities"
	AreaOneOnOne          = "one_on_one"
	AreaFamilyFriends     = "family_friends"
	AreaPolitics          = "politics"
	AreaSpiritual         = "spiritual"
)

// LifeArea rows are seeded by migration and never change at runtime.
type LifeArea struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	DisplayName string `gorm:"not null" json:"display_name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

func DefaultLifeAreas() []LifeArea {
	return []LifeArea{
		{ID: 1, Name: AreaPhysicalHealth, DisplayName: "Physical/Health", Description: "Optimize physical wellbeing", Icon: "💪"},
		{ID: 2, Name: AreaHobby, DisplayName: "Hobby", Description: "Pursue creative interests", Icon: "🎨"},
		{ID: 3, Name: AreaIncomeExpenses, DisplayName: "Income & Expenses", Description: "Monitor cash flow", Icon: "💰"},
		{ID: 4, Name: AreaAssetsLiabilities, DisplayName: "Assets & Liabilities", Description: "Manage wealth and debts", Icon: "🏦"},
		{ID: 5, Name: AreaOneOnOne, DisplayName: "One-on-One Relationship", Description: "Strengthen primary partnership", Icon: "💑"},
		{ID: 6, Name: AreaFamilyFriends, DisplayName: "Family & Friends", Description: "Nurture social connections", Icon: "👨‍👩‍👧‍👦"},
		{ID: 7, Name: AreaPolitics, DisplayName: "Politics/Civics", Description: "Engage with civic duties", Icon: "🗳️"},
		{ID: 8, Name: AreaSpiritual, DisplayName: "Spiritual", Description: "Deepen faith and spiritual practices", Icon: "🙏"},
	}
}
