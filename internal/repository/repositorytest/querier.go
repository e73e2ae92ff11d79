// Package repositorytest provides a testify mock of repository.Querier.
package repositorytest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/chanseok/rememberme/internal/repository"
)

// MockQuerier implements repository.Querier with testify/mock.
type MockQuerier struct {
	mock.Mock
}

var _ repository.Querier = (*MockQuerier)(nil)

func (m *MockQuerier) CreateUser(ctx context.Context, arg repository.CreateUserParams) (repository.User, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(repository.User), args.Error(1)
}

func (m *MockQuerier) GetUserByID(ctx context.Context, id int64) (repository.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(repository.User), args.Error(1)
}

func (m *MockQuerier) GetUserByEmail(ctx context.Context, email string) (repository.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(repository.User), args.Error(1)
}

func (m *MockQuerier) CreateWord(ctx context.Context, arg repository.CreateWordParams) (repository.Word, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(repository.Word), args.Error(1)
}

func (m *MockQuerier) GetWordByID(ctx context.Context, id int64) (repository.Word, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(repository.Word), args.Error(1)
}

func (m *MockQuerier) ListWords(ctx context.Context, arg repository.ListWordsParams) ([]repository.Word, error) {
	args := m.Called(ctx, arg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.Word), args.Error(1)
}

func (m *MockQuerier) CountWords(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuerier) UpdateWord(ctx context.Context, arg repository.UpdateWordParams) (repository.Word, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(repository.Word), args.Error(1)
}

func (m *MockQuerier) DeleteWord(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockQuerier) AddUserWord(ctx context.Context, arg repository.AddUserWordParams) (repository.UserWord, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(repository.UserWord), args.Error(1)
}

func (m *MockQuerier) ListUserWords(ctx context.Context, userID int64) ([]repository.UserWordDetail, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.UserWordDetail), args.Error(1)
}

func (m *MockQuerier) UpdateUserWord(ctx context.Context, arg repository.UpdateUserWordParams) (repository.UserWord, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(repository.UserWord), args.Error(1)
}

func (m *MockQuerier) DeleteUserWord(ctx context.Context, arg repository.DeleteUserWordParams) error {
	return m.Called(ctx, arg).Error(0)
}
