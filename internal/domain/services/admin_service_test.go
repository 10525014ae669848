package services

import (
	"testing"

	"github.com/Zohaib521321/job-potal-admin/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminService_UpdateAdmin_BlankPasswordKeepsOldHash(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `admins` .*").
		WillReturnRows(adminRows("old-hash"))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `admins`.*").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	// 密码留空时 SET 子句只有 username/email/role/updated_at 四列，
	// 参数为4个赋值加 WHERE 的主键
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `admins` SET .*").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery("SELECT \\* FROM `admins` .*").
		WillReturnRows(adminRows("old-hash"))

	service := NewAdminService(db, nil)
	admin, err := service.UpdateAdmin(1, "admin", "admin@jobportal.com", "", models.RoleSuperAdmin)
	require.NoError(t, err)

	assert.Equal(t, "old-hash", admin.Password)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminService_UpdateAdmin_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `admins` .*").
		WillReturnRows(adminRows("old-hash"))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `admins`.*").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	service := NewAdminService(db, nil)
	_, err := service.UpdateAdmin(1, "admin", "taken@jobportal.com", "", models.RoleAdmin)
	assert.ErrorIs(t, err, ErrAdminAlreadyExist)
}
