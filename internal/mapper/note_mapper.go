package mapper

import (
	"github.com/DeDsEC-7/NoteNest-Api/internal/entity"
	"github.com/DeDsEC-7/NoteNest-Api/internal/model"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}

	return &entity.Note{
		Id:        n.Id,
		Title:     n.Title,
		Content:   n.Content,
		UserId:    n.UserId,
		State:     entity.LifecycleFromFlags(n.IsPinned, n.IsArchived, n.IsTrash),
		CreatedAt: n.CreatedAt,
		UpdatedAt: updatedAtPtr(n.UpdatedAt),
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}

	pinned, archived, trashed := n.State.Flags()

	return &model.Note{
		Id:         n.Id,
		Title:      n.Title,
		Content:    n.Content,
		IsPinned:   pinned,
		IsArchived: archived,
		IsTrash:    trashed,
		UserId:     n.UserId,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  updatedAtValue(n.UpdatedAt),
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
