package services

import (
	"testing"

	"github.com/Zohaib521321/job-potal-admin/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jobRow() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "slug", "status", "priority", "job_type", "category_id"}).
		AddRow(1, "Go Developer", "go-developer", models.JobStatusPending, models.JobPriorityNormal, models.JobTypeFullTime, nil)
}

func TestJobService_UpdateJob_PartialUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `jobs` .*").WillReturnRows(jobRow())

	// 只更新传入的字段，其余字段不出现在 SET 子句里
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `jobs` SET `status`=\\?,`updated_at`=\\? WHERE .*").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery("SELECT \\* FROM `jobs` .*").WillReturnRows(jobRow())

	service := NewJobService(db, nil)
	_, err := service.UpdateJob(1, map[string]interface{}{"status": models.JobStatusActive})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobService_UpdateJob_IgnoresNonEditableColumns(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `jobs` .*").WillReturnRows(jobRow())

	// slug/views/created_at 不可外部写入，SET 子句里只剩 title
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `jobs` SET `title`=\\?,`updated_at`=\\? WHERE .*").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery("SELECT \\* FROM `jobs` .*").WillReturnRows(jobRow())

	service := NewJobService(db, nil)
	_, err := service.UpdateJob(1, map[string]interface{}{
		"title":      "Senior Go Developer",
		"slug":       "hijacked-slug",
		"views":      9999,
		"created_at": "2020-01-01",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobService_UpdateJob_InvalidValues(t *testing.T) {
	testCases := []struct {
		name    string
		updates map[string]interface{}
	}{
		{name: "非法状态", updates: map[string]interface{}{"status": "archived"}},
		{name: "非法优先级", updates: map[string]interface{}{"priority": "critical"}},
		{name: "非法职位类型", updates: map[string]interface{}{"job_type": "part-time"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			mock.ExpectQuery("SELECT \\* FROM `jobs` .*").WillReturnRows(jobRow())

			service := NewJobService(db, nil)
			_, err := service.UpdateJob(1, tc.updates)
			assert.ErrorIs(t, err, ErrJobInvalidStatus)
		})
	}
}

func TestJobService_GetJobByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `jobs` .*").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	service := NewJobService(db, nil)
	_, err := service.GetJobByID(99)
	assert.ErrorIs(t, err, ErrJobNotFound)
}
