package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/DeDsEC-7/NoteNest-Api/internal/entity"
	"github.com/DeDsEC-7/NoteNest-Api/internal/repository/specification"
	"github.com/DeDsEC-7/NoteNest-Api/internal/repository/unitofwork"
	"github.com/DeDsEC-7/NoteNest-Api/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.NoteRepository())
	assert.NotNil(t, uow.TodoRepository())
	assert.NotNil(t, uow.TaskRepository())

	// Basic ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Transactional Todo With Tasks", func(t *testing.T) {
		ctx := context.Background()

		user := &entity.User{
			Id:           uuid.New(),
			Firstname:    "Integration",
			Lastname:     "User",
			Email:        "test-integration-" + uuid.New().String() + "@example.com",
			PasswordHash: "not-a-real-hash",
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		err := uow.UserRepository().Create(ctx, user)
		assert.NoError(t, err)

		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		todo := &entity.Todo{
			Id:        uuid.New(),
			Title:     "Integration Todo",
			UserId:    user.Id,
			State:     entity.LifecycleActive,
			CreatedAt: time.Now(),
		}
		err = uow.TodoRepository().Create(ctx, todo)
		assert.NoError(t, err)

		tasks := []*entity.Task{
			{Id: uuid.New(), Title: "first", TodoId: todo.Id, CreatedAt: time.Now()},
			{Id: uuid.New(), Title: "second", TodoId: todo.Id, CreatedAt: time.Now()},
		}
		err = uow.TaskRepository().CreateBatch(ctx, tasks)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		found, err := uow.TodoRepository().FindOne(ctx,
			specification.ByID{ID: todo.Id},
			specification.UserOwnedBy{UserID: user.Id},
		)
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Len(t, found.Tasks, 2)
		}

		t.Log("Successfully created Todo with Tasks in transaction")
	})

	t.Run("Check Todo Delete Cascades To Tasks", func(t *testing.T) {
		ctx := context.Background()

		user := &entity.User{
			Id:           uuid.New(),
			Firstname:    "Integration",
			Lastname:     "Cascade",
			Email:        "test-cascade-" + uuid.New().String() + "@example.com",
			PasswordHash: "not-a-real-hash",
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		err := uow.UserRepository().Create(ctx, user)
		assert.NoError(t, err)

		todo := &entity.Todo{
			Id:        uuid.New(),
			Title:     "Cascade Todo",
			UserId:    user.Id,
			State:     entity.LifecycleActive,
			CreatedAt: time.Now(),
		}
		err = uow.TodoRepository().Create(ctx, todo)
		assert.NoError(t, err)

		tasks := []*entity.Task{
			{Id: uuid.New(), Title: "first", TodoId: todo.Id, CreatedAt: time.Now()},
			{Id: uuid.New(), Title: "second", TodoId: todo.Id, CreatedAt: time.Now()},
			{Id: uuid.New(), Title: "third", TodoId: todo.Id, CreatedAt: time.Now()},
		}
		err = uow.TaskRepository().CreateBatch(ctx, tasks)
		assert.NoError(t, err)

		err = uow.TodoRepository().Delete(ctx, todo.Id)
		assert.NoError(t, err)

		// The FK cascade must take the tasks with the parent.
		for _, task := range tasks {
			found, err := uow.TaskRepository().FindOne(ctx,
				specification.TaskByID{ID: task.Id},
				specification.TaskOwnedThroughTodo{UserID: user.Id},
			)
			assert.NoError(t, err)
			assert.Nil(t, found)
		}

		t.Log("Successfully cascaded Todo delete to its Tasks")
	})

	t.Run("Check Category All Finds Trashed Note", func(t *testing.T) {
		ctx := context.Background()

		user := &entity.User{
			Id:           uuid.New(),
			Firstname:    "Integration",
			Lastname:     "Search",
			Email:        "test-search-" + uuid.New().String() + "@example.com",
			PasswordHash: "not-a-real-hash",
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		err := uow.UserRepository().Create(ctx, user)
		assert.NoError(t, err)

		marker := uuid.New().String()
		note := &entity.Note{
			Id:        uuid.New(),
			Title:     "Trashed note " + marker,
			Content:   "gone but searchable",
			UserId:    user.Id,
			State:     entity.LifecycleTrashed,
			CreatedAt: time.Now(),
		}
		err = uow.NoteRepository().Create(ctx, note)
		assert.NoError(t, err)

		found, err := uow.NoteRepository().FindAll(ctx,
			specification.UserOwnedBy{UserID: user.Id},
			specification.NoteKeyword{Keyword: marker},
			specification.ByCategory{Category: specification.CategoryAll},
		)
		assert.NoError(t, err)
		if assert.Len(t, found, 1) {
			assert.Equal(t, entity.LifecycleTrashed, found[0].State)
		}

		// The trashed bucket still excludes it from the active listing.
		active, err := uow.NoteRepository().FindAll(ctx,
			specification.UserOwnedBy{UserID: user.Id},
			specification.NoteKeyword{Keyword: marker},
			specification.ByCategory{Category: specification.CategoryActive},
		)
		assert.NoError(t, err)
		assert.Empty(t, active)

		t.Log("Successfully found trashed note through the unfiltered category")
	})
}
