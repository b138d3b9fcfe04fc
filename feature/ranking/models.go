package ranking

import "time"

// Pokemon is a ranked item. Rows are created by seeding and only their
// rating changes afterwards.
type Pokemon struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Slug      string    `gorm:"column:slug;not null;index" json:"slug"`
	DexID     int       `gorm:"column:dex_id;not null;uniqueIndex" json:"dexId"`
	Rating    float64   `gorm:"column:rating;not null;default:1200;index" json:"rating"`
	CreatedAt time.Time `gorm:"column:created_at" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"-"`
}

// TableName overrides the table name.
func (Pokemon) TableName() string {
	return "pokemon"
}

// Vote is an append-only record of one comparison outcome.
type Vote struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	WinnerID  uint      `gorm:"column:winner_id;not null;index" json:"winnerId"`
	LoserID   uint      `gorm:"column:loser_id;not null;index" json:"loserId"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`

	Winner Pokemon `gorm:"foreignKey:WinnerID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`
	Loser  Pokemon `gorm:"foreignKey:LoserID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`
}

// TableName overrides the table name.
func (Vote) TableName() string {
	return "votes"
}

// NewItem is a catalog entry to insert.
type NewItem struct {
	Name  string `json:"name"`
	DexID int    `json:"dexId"`
}

// Models lists the tables owned by the ranking feature, in migration order.
func Models() []any {
	return []any{&Pokemon{}, &Vote{}}
}
