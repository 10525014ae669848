package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_GetAllSettings(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `settings`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "setting_key", "setting_value"}).
			AddRow(1, "site_name", "Job Portal").
			AddRow(2, "contact_email", "info@jobportal.com"))

	service := NewSettingsService(db, nil)
	settings, err := service.GetAllSettings()
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"site_name":     "Job Portal",
		"contact_email": "info@jobportal.com",
	}, settings)
}

func TestSettingsService_UpdateSettings(t *testing.T) {
	db, mock := newMockDB(t)

	// 不存在的键通过 upsert 自动创建
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `settings` .*ON DUPLICATE KEY UPDATE.*").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	// 更新后的回读
	mock.ExpectQuery("SELECT \\* FROM `settings`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "setting_key", "setting_value"}).
			AddRow(1, "site_name", "New Name"))

	service := NewSettingsService(db, nil)
	settings, err := service.UpdateSettings(map[string]string{"site_name": "New Name"})
	require.NoError(t, err)

	assert.Equal(t, "New Name", settings["site_name"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
