package model

// FamilyMember is one person who rates meals. ID and CreatedAt are assigned
// at creation and never change.
type FamilyMember struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Avatar    string `json:"avatar,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// MealRating records whether one member liked a meal. MemberID is a soft
// reference: the member may have been deleted since the rating was stored.
type MealRating struct {
	MemberID string `json:"memberId"`
	Liked    bool   `json:"liked"`
}

// Meal is a single cooked-meal record. Date is the calendar day key
// (YYYY-MM-DD), distinct from the CreatedAt timestamp. Ingredients is absent
// when none were recorded.
type Meal struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Date        string       `json:"date"`
	Ingredients []string     `json:"ingredients,omitempty"`
	Ratings     []MealRating `json:"ratings"`
	CreatedAt   string       `json:"createdAt"`
	UpdatedAt   string       `json:"updatedAt"`
}

// MealGroup is one history partition: all meals cooked on one date.
type MealGroup struct {
	Date  string `json:"date"`
	Meals []Meal `json:"meals"`
}
