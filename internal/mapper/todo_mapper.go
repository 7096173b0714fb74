package mapper

import (
	"time"

	"gorm.io/datatypes"

	"github.com/DeDsEC-7/NoteNest-Api/internal/entity"
	"github.com/DeDsEC-7/NoteNest-Api/internal/model"
)

type TodoMapper struct {
	taskMapper *TaskMapper
}

func NewTodoMapper() *TodoMapper {
	return &TodoMapper{
		taskMapper: NewTaskMapper(),
	}
}

func (m *TodoMapper) ToEntity(t *model.Todo) *entity.Todo {
	if t == nil {
		return nil
	}

	var due *time.Time
	if t.DueDate != nil {
		d := time.Time(*t.DueDate)
		due = &d
	}

	return &entity.Todo{
		Id:        t.Id,
		Title:     t.Title,
		DueDate:   due,
		Completed: t.Completed,
		UserId:    t.UserId,
		State:     entity.LifecycleFromFlags(t.IsPinned, t.IsArchived, t.IsTrash),
		Tasks:     m.taskMapper.ToEntities(t.Tasks),
		CreatedAt: t.CreatedAt,
		UpdatedAt: updatedAtPtr(t.UpdatedAt),
	}
}

func (m *TodoMapper) ToModel(t *entity.Todo) *model.Todo {
	if t == nil {
		return nil
	}

	var due *datatypes.Date
	if t.DueDate != nil {
		d := datatypes.Date(*t.DueDate)
		due = &d
	}

	pinned, archived, trashed := t.State.Flags()

	return &model.Todo{
		Id:         t.Id,
		Title:      t.Title,
		Completed:  t.Completed,
		DueDate:    due,
		IsPinned:   pinned,
		IsArchived: archived,
		IsTrash:    trashed,
		UserId:     t.UserId,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  updatedAtValue(t.UpdatedAt),
	}
}

func (m *TodoMapper) ToEntities(todos []*model.Todo) []*entity.Todo {
	entities := make([]*entity.Todo, len(todos))
	for i, t := range todos {
		entities[i] = m.ToEntity(t)
	}
	return entities
}

type TaskMapper struct{}

func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

func (m *TaskMapper) ToEntity(t *model.Task) *entity.Task {
	if t == nil {
		return nil
	}

	return &entity.Task{
		Id:          t.Id,
		Title:       t.Title,
		IsCompleted: t.IsCompleted,
		TodoId:      t.TodoId,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   updatedAtPtr(t.UpdatedAt),
	}
}

func (m *TaskMapper) ToModel(t *entity.Task) *model.Task {
	if t == nil {
		return nil
	}

	return &model.Task{
		Id:          t.Id,
		Title:       t.Title,
		IsCompleted: t.IsCompleted,
		TodoId:      t.TodoId,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   updatedAtValue(t.UpdatedAt),
	}
}

func (m *TaskMapper) ToEntities(tasks []model.Task) []*entity.Task {
	entities := make([]*entity.Task, len(tasks))
	for i := range tasks {
		entities[i] = m.ToEntity(&tasks[i])
	}
	return entities
}

func (m *TaskMapper) ToModels(tasks []*entity.Task) []model.Task {
	models := make([]model.Task, len(tasks))
	for i, t := range tasks {
		models[i] = *m.ToModel(t)
	}
	return models
}
