package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DeDsEC-7/NoteNest-Api/internal/entity"
	"github.com/DeDsEC-7/NoteNest-Api/internal/mapper"
	"github.com/DeDsEC-7/NoteNest-Api/internal/model"
	"github.com/DeDsEC-7/NoteNest-Api/internal/repository/contract"
	"github.com/DeDsEC-7/NoteNest-Api/internal/repository/specification"
)

type TodoRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TodoMapper
}

func NewTodoRepository(db *gorm.DB) contract.TodoRepository {
	return &TodoRepositoryImpl{
		db:     db,
		mapper: mapper.NewTodoMapper(),
	}
}

func (r *TodoRepositoryImpl) Create(ctx context.Context, todo *entity.Todo) error {
	m := r.mapper.ToModel(todo)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*todo = *r.mapper.ToEntity(m)
	return nil
}

func (r *TodoRepositoryImpl) Update(ctx context.Context, todo *entity.Todo) error {
	m := r.mapper.ToModel(todo)
	if err := r.db.WithContext(ctx).Model(m).Select("*").Omit("created_at", "Tasks").Updates(m).Error; err != nil {
		return err
	}
	*todo = *r.mapper.ToEntity(m)
	return nil
}

func (r *TodoRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	// tasks cascade via ON DELETE CASCADE on tasks.todo_id
	return r.db.WithContext(ctx).Delete(&model.Todo{}, id).Error
}

func (r *TodoRepositoryImpl) DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.Todo{}).Error
}

func (r *TodoRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Todo, error) {
	var m model.Todo
	query := applySpecifications(r.db.WithContext(ctx).Preload("Tasks"), specs)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TodoRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Todo, error) {
	var models []*model.Todo
	query := applySpecifications(r.db.WithContext(ctx).Preload("Tasks"), specs)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TodoRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Todo{}), specs)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
