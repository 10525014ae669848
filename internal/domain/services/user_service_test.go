package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetAllUsers_Search(t *testing.T) {
	db, mock := newMockDB(t)

	// 搜索同时命中邮箱和姓名列，列名必须与建表一致
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users` WHERE email LIKE \\? OR full_name LIKE \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email LIKE \\? OR full_name LIKE \\? .*").
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "email"}).
			AddRow(1, "Ali Raza", "ali@example.com"))
	mock.ExpectQuery("SELECT user_id, COUNT\\(\\*\\) AS count FROM `resumes`.*").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "count"}).AddRow(1, 2))
	mock.ExpectQuery("SELECT user_id, COUNT\\(\\*\\) AS count FROM `cover_letters`.*").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "count"}))

	service := NewUserService(db, nil)
	users, total, err := service.GetAllUsers(1, 10, "ali")
	require.NoError(t, err)

	assert.Equal(t, int64(1), total)
	require.Len(t, users, 1)
	assert.Equal(t, "Ali Raza", users[0].FullName)
	assert.Equal(t, int64(2), users[0].ResumeCount)
	assert.Equal(t, int64(0), users[0].CoverLetterCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_GetAllUsers_NoSearch(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT \\* FROM `users` .*").
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "email"}))

	service := NewUserService(db, nil)
	users, total, err := service.GetAllUsers(1, 10, "")
	require.NoError(t, err)

	assert.Equal(t, int64(0), total)
	assert.Empty(t, users)
}

func TestUserService_GetUserDetail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `users` .*").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	service := NewUserService(db, nil)
	_, err := service.GetUserDetail(9)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
