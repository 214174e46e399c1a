package models

type Achievement struct {
	ID          string `bson:"_id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
	Icon        string `bson:"icon" json:"icon"`
	Points      int    `bson:"points" json:"points"`
	Rarity      string `bson:"rarity" json:"rarity"` // common, rare, epic, legendary
}

func (a Achievement) EntityID() string { return a.ID }

// UserAchievement pairs a badge with the holder's static progress. Progress
// is seed data; no update mechanism exists.
type UserAchievement struct {
	Achievement Achievement `json:"achievement"`
	Earned      bool        `json:"earned"`
	Progress    int         `json:"progress"` // percent, 100 when earned
	EarnedAt    int64       `json:"earnedAt,omitempty"`
}
