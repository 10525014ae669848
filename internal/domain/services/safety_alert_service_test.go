package services

import (
	"testing"

	"github.com/Zohaib521321/job-potal-admin/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafetyAlertService_CreateAlert(t *testing.T) {
	t.Run("默认值和 slug 生成", func(t *testing.T) {
		db, mock := newMockDB(t)
		// slug 冲突检查
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `safety_alerts`.*").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `safety_alerts` .*").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		service := NewSafetyAlertService(db, nil)
		alert, err := service.CreateAlert(&SafetyAlertInput{
			Title:       "Gas Leak in Sector 7!",
			Description: "<p>Avoid the area until further notice.</p>",
		})
		require.NoError(t, err)

		assert.Equal(t, "gas-leak-in-sector-7", alert.Slug)
		assert.Equal(t, models.SafetyAlertPriorityMedium, alert.Priority)
		assert.Equal(t, models.SafetyAlertStatusDraft, alert.Status)
		// HTML标签入库前被剥离
		assert.Equal(t, "Avoid the area until further notice.", alert.Description)
	})

	t.Run("slug 冲突时追加随机后缀", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `safety_alerts`.*").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `safety_alerts` .*").
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectCommit()

		service := NewSafetyAlertService(db, nil)
		alert, err := service.CreateAlert(&SafetyAlertInput{
			Title:       "Gas Leak in Sector 7!",
			Description: "Second report.",
		})
		require.NoError(t, err)

		assert.NotEqual(t, "gas-leak-in-sector-7", alert.Slug)
		assert.Contains(t, alert.Slug, "gas-leak-in-sector-7-")
	})

	t.Run("非法优先级被拒绝", func(t *testing.T) {
		db, _ := newMockDB(t)
		service := NewSafetyAlertService(db, nil)

		_, err := service.CreateAlert(&SafetyAlertInput{
			Title:       "Flood Warning",
			Description: "Heavy rain expected.",
			Priority:    "critical",
		})
		assert.ErrorIs(t, err, ErrSafetyAlertInvalidStatus)
	})
}

func TestSafetyAlertService_GetAllAlerts_InvalidStatus(t *testing.T) {
	db, _ := newMockDB(t)
	service := NewSafetyAlertService(db, nil)

	_, _, err := service.GetAllAlerts(1, 10, "closed")
	assert.ErrorIs(t, err, ErrSafetyAlertInvalidStatus)
}

func TestSafetyAlertService_UpdateAlertStatus_Invalid(t *testing.T) {
	db, _ := newMockDB(t)
	service := NewSafetyAlertService(db, nil)

	_, err := service.UpdateAlertStatus(1, "deleted")
	assert.ErrorIs(t, err, ErrSafetyAlertInvalidStatus)
}

func TestSafetyAlertService_GetAlertByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `safety_alerts` .*").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	service := NewSafetyAlertService(db, nil)
	_, err := service.GetAlertByID(42)
	assert.ErrorIs(t, err, ErrSafetyAlertNotFound)
}
