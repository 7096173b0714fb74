package specification

import "gorm.io/gorm"

// Category selects the lifecycle base filter for listings. The stored
// schema keeps three boolean columns, so each category is a flag
// combination rather than an equality on one column.
type Category string

const (
	CategoryActive   Category = "active"
	CategoryArchived Category = "archived"
	CategoryTrashed  Category = "trash"
	CategoryPinned   Category = "pinned"
	CategoryAll      Category = "all"
)

// ByCategory filters notes or todos by lifecycle placement.
// CategoryAll applies no filter at all: unified search deliberately
// reaches into archived and trashed items unless narrowed.
type ByCategory struct {
	Category Category
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	switch s.Category {
	case CategoryArchived:
		return db.Where("is_archived = ? AND is_trash = ?", true, false)
	case CategoryTrashed:
		// trash supersedes archived
		return db.Where("is_trash = ?", true)
	case CategoryPinned:
		return db.Where("is_pinned = ? AND is_archived = ? AND is_trash = ?", true, false, false)
	case CategoryActive:
		return db.Where("is_archived = ? AND is_trash = ?", false, false)
	default:
		return db
	}
}

// ParseCategory maps a request string onto a known category, defaulting
// unknown values to CategoryAll the way the search endpoint treats them.
func ParseCategory(raw string) Category {
	switch Category(raw) {
	case CategoryActive, CategoryArchived, CategoryTrashed, CategoryPinned:
		return Category(raw)
	default:
		return CategoryAll
	}
}
