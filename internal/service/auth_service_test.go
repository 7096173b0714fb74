package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/DeDsEC-7/NoteNest-Api/internal/dto"
	"github.com/DeDsEC-7/NoteNest-Api/internal/entity"
	"github.com/DeDsEC-7/NoteNest-Api/internal/pkg/apperr"
)

const testJwtSecret = "unit-test-secret"

// recordingMailer captures sends so tests can wait on the goroutine.
type recordingMailer struct {
	mu   sync.Mutex
	sent []string
	done chan struct{}
}

func newRecordingMailer() *recordingMailer {
	return &recordingMailer{done: make(chan struct{}, 1)}
}

func (m *recordingMailer) SendPasswordChangedNotice(toEmail string) error {
	m.mu.Lock()
	m.sent = append(m.sent, toEmail)
	m.mu.Unlock()
	m.done <- struct{}{}
	return nil
}

func newAuthFixture() (*mockUserRepository, *mockNoteRepository, *mockTodoRepository, *mockUnitOfWork, *recordingMailer, IAuthService) {
	users := new(mockUserRepository)
	notes := new(mockNoteRepository)
	todos := new(mockTodoRepository)
	uow := &mockUnitOfWork{users: users, notes: notes, todos: todos}
	mailSvc := newRecordingMailer()
	svc := NewAuthService(&stubFactory{uow: uow}, mailSvc, nil, testJwtSecret, 72*time.Hour, nopLogger{})
	return users, notes, todos, uow, mailSvc, svc
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users, _, _, _, _, svc := newAuthFixture()

	users.On("FindOne", mock.Anything, mock.Anything).Return(&entity.User{Id: uuid.New()}, nil)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Firstname: "A",
		Lastname:  "B",
		Email:     "taken@example.com",
		Password:  "secret1",
	})
	require.Error(t, err)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindConflict, appErr.Kind)
	users.AssertNotCalled(t, "Create")
}

func TestRegisterHashesPassword(t *testing.T) {
	users, _, _, _, _, svc := newAuthFixture()

	users.On("FindOne", mock.Anything, mock.Anything).Return(nil, nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.PasswordHash != "secret1" &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")) == nil
	})).Return(nil)

	res, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Firstname: "A",
		Lastname:  "B",
		Email:     "new@example.com",
		Password:  "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", res.Email)
	users.AssertExpectations(t)
}

func TestLoginInvalidCredentials(t *testing.T) {
	users, _, _, _, _, svc := newAuthFixture()

	user := &entity.User{Id: uuid.New(), Email: "u@example.com", PasswordHash: hashOf(t, "right")}
	users.On("FindOne", mock.Anything, mock.Anything).Return(user, nil)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "u@example.com", Password: "wrong"})
	require.Error(t, err)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindUnauthenticated, appErr.Kind)
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	users, _, _, _, _, svc := newAuthFixture()

	users.On("FindOne", mock.Anything, mock.Anything).Return(nil, nil)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "ghost@example.com", Password: "x"})
	require.Error(t, err)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindUnauthenticated, appErr.Kind)
}

func TestLoginIssuesToken(t *testing.T) {
	users, _, _, _, _, svc := newAuthFixture()

	user := &entity.User{Id: uuid.New(), Email: "u@example.com", PasswordHash: hashOf(t, "right")}
	users.On("FindOne", mock.Anything, mock.Anything).Return(user, nil)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "u@example.com", Password: "right"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, user.Id, res.User.Id)

	// The token must verify against the configured secret, the same one
	// the middleware is wired with.
	parsed, err := jwt.Parse(res.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testJwtSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, user.Id.String(), claims["user_id"])
}

func TestChangePasswordWrongOld(t *testing.T) {
	users, _, _, _, mailSvc, svc := newAuthFixture()

	user := &entity.User{Id: uuid.New(), Email: "u@example.com", PasswordHash: hashOf(t, "old")}
	users.On("FindOne", mock.Anything, mock.Anything).Return(user, nil)

	err := svc.ChangePassword(context.Background(), user.Id, &dto.ChangePasswordRequest{
		OldPassword: "not-old",
		NewPassword: "newpass",
	})
	require.Error(t, err)
	users.AssertNotCalled(t, "Update")
	assert.Empty(t, mailSvc.sent)
}

func TestChangePasswordSendsNotice(t *testing.T) {
	users, _, _, _, mailSvc, svc := newAuthFixture()

	user := &entity.User{Id: uuid.New(), Email: "u@example.com", PasswordHash: hashOf(t, "old")}
	users.On("FindOne", mock.Anything, mock.Anything).Return(user, nil)
	users.On("Update", mock.Anything, mock.Anything).Return(nil)

	err := svc.ChangePassword(context.Background(), user.Id, &dto.ChangePasswordRequest{
		OldPassword: "old",
		NewPassword: "newpass",
	})
	require.NoError(t, err)

	select {
	case <-mailSvc.done:
	case <-time.After(time.Second):
		t.Fatal("expected a security notice email")
	}
	assert.Equal(t, []string{"u@example.com"}, mailSvc.sent)
}

func TestDeleteAccountCascades(t *testing.T) {
	users, notes, todos, uow, _, svc := newAuthFixture()
	userId := uuid.New()

	users.On("FindOne", mock.Anything, mock.Anything).Return(&entity.User{Id: userId}, nil)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Commit").Return(nil)
	uow.On("Rollback").Return(nil)
	notes.On("DeleteAllByUserId", mock.Anything, userId).Return(nil)
	todos.On("DeleteAllByUserId", mock.Anything, userId).Return(nil)
	users.On("Delete", mock.Anything, userId).Return(nil)

	require.NoError(t, svc.DeleteAccount(context.Background(), userId))
	uow.AssertCalled(t, "Commit")
	notes.AssertExpectations(t)
	todos.AssertExpectations(t)
}
