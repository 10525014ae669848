package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestCategoryService_DeleteCategory_WithSubscribers(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `categories` .*").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "status"}).
			AddRow(1, "Software Engineering", "active"))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `subscriptions`.*").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	service := NewCategoryService(db, nil)
	err := service.DeleteCategory(1)

	assert.ErrorIs(t, err, ErrCategoryHasSubscribers)
	// 分类未被删除，没有触发事务
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryService_GetCategoryByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `categories` .*").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	service := NewCategoryService(db, nil)
	_, err := service.GetCategoryByID(42)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
