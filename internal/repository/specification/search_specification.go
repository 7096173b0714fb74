package specification

import "gorm.io/gorm"

// NoteKeyword matches notes by case-insensitive substring on title OR
// content. Uses ILIKE (Postgres).
type NoteKeyword struct {
	Keyword string
}

func (s NoteKeyword) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Keyword + "%"
	return db.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
}

// TitleKeyword matches by title only. Todos carry no free-text body, so
// this is the whole of todo search.
type TitleKeyword struct {
	Keyword string
}

func (s TitleKeyword) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("title ILIKE ?", "%"+s.Keyword+"%")
}
