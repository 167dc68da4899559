package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"finance-tracker/internal/schedule"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DailySummary is derived spend-by-category data for one user, day and
// expense book. It can always be rebuilt from the expenses table.
type DailySummary struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID        string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_daily_summary_key,priority:1" json:"user_id"`
	Date          time.Time       `gorm:"not null;uniqueIndex:idx_daily_summary_key,priority:2" json:"date"`
	ExpenseBookID string          `gorm:"type:varchar(255);not null;default:'';uniqueIndex:idx_daily_summary_key,priority:3" json:"expense_book_id,omitempty"`
	Categories    CategoryTotals  `gorm:"type:text;not null" json:"categories"`
	TotalSpent    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"total_spent"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

func (d *DailySummary) TableName() string {
	return "daily_summaries"
}

// BeforeCreate hook for DailySummary
func (d *DailySummary) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}

	now := time.Now()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = now
	return nil
}

// BeforeUpdate hook for DailySummary
func (d *DailySummary) BeforeUpdate(tx *gorm.DB) error {
	d.UpdatedAt = time.Now()
	return nil
}

// NewDailySummary returns an empty row for key.
func NewDailySummary(key SummaryKey) *DailySummary {
	return &DailySummary{
		UserID:        key.UserID,
		Date:          schedule.TruncateToDay(key.Date),
		ExpenseBookID: key.ExpenseBookID,
		Categories:    CategoryTotals{},
		TotalSpent:    decimal.Zero,
	}
}

// Key returns the composite identity of the row.
func (d *DailySummary) Key() SummaryKey {
	return SummaryKey{UserID: d.UserID, ExpenseBookID: d.ExpenseBookID, Date: schedule.TruncateToDay(d.Date)}
}

// Apply adds delta to the matching category entry, creating it if needed.
// An entry whose count drops to zero or below is removed regardless of the
// amount. Totals and ordering are recomputed afterwards.
func (d *DailySummary) Apply(delta SummaryDelta) {
	idx := -1
	for i := range d.Categories {
		if d.Categories[i].Category == delta.Category {
			idx = i
			break
		}
	}

	if idx < 0 {
		d.Categories = append(d.Categories, CategoryTotal{Category: delta.Category, Amount: decimal.Zero})
		idx = len(d.Categories) - 1
	}

	entry := &d.Categories[idx]
	entry.Amount = entry.Amount.Add(delta.Amount)
	entry.Count += delta.Count

	if entry.Count <= 0 {
		d.Categories = append(d.Categories[:idx], d.Categories[idx+1:]...)
	}

	d.Recalculate()
}

// Recalculate sets TotalSpent to the sum of the category amounts and sorts
// the categories by amount, largest first.
func (d *DailySummary) Recalculate() {
	total := decimal.Zero
	for _, c := range d.Categories {
		total = total.Add(c.Amount)
	}
	d.TotalSpent = total
	d.Categories.Sort()
}

// IsEmpty reports whether the row should be deleted rather than stored.
func (d *DailySummary) IsEmpty() bool {
	return len(d.Categories) == 0 && !d.TotalSpent.IsPositive()
}

// SummaryKey identifies one daily summary row. ExpenseBookID "" is the
// bucket for expenses outside any book.
type SummaryKey struct {
	UserID        string
	ExpenseBookID string
	Date          time.Time
}

// Normalize truncates the date so equal days compare equal.
func (k SummaryKey) Normalize() SummaryKey {
	k.Date = schedule.TruncateToDay(k.Date)
	return k
}

func (k SummaryKey) String() string {
	return fmt.Sprintf("%s/%s/%s", k.UserID, k.ExpenseBookID, schedule.FormatDate(k.Date))
}

// SummaryDelta is a signed change to one category of one daily summary.
type SummaryDelta struct {
	SummaryKey
	Category string
	Amount   decimal.Decimal
	Count    int
}

// CategoryTotal is the running amount and count for one category on one day.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Count    int             `json:"count"`
}

// CategoryTotals is stored as a JSON array column.
type CategoryTotals []CategoryTotal

// Sort orders by amount descending, then category name for stable output.
func (c CategoryTotals) Sort() {
	sort.SliceStable(c, func(i, j int) bool {
		if cmp := c[i].Amount.Cmp(c[j].Amount); cmp != 0 {
			return cmp > 0
		}
		return c[i].Category < c[j].Category
	})
}

// Find returns the entry for category, or nil.
func (c CategoryTotals) Find(category string) *CategoryTotal {
	for i := range c {
		if c[i].Category == category {
			return &c[i]
		}
	}
	return nil
}

// Value implements driver.Valuer interface
func (c CategoryTotals) Value() (driver.Value, error) {
	if c == nil {
		c = CategoryTotals{}
	}
	bytes, err := json.Marshal([]CategoryTotal(c))
	if err != nil {
		return nil, err
	}
	// string keeps sqlite and postgres text columns happy
	return string(bytes), nil
}

func (c *CategoryTotals) Scan(value interface{}) error {
	if value == nil {
		*c = CategoryTotals{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into CategoryTotals", value)
	}

	if len(bytes) == 0 {
		*c = CategoryTotals{}
		return nil
	}

	var totals []CategoryTotal
	if err := json.Unmarshal(bytes, &totals); err != nil {
		return err
	}
	*c = CategoryTotals(totals)
	return nil
}
