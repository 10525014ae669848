package services

import (
	"testing"

	"github.com/Zohaib521321/job-potal-admin/internal/domain/models"
	"github.com/Zohaib521321/job-potal-admin/internal/infrastructure/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func newTestJWTService(db *gorm.DB) InterfaceJWTService {
	return NewJWTService(&config.Config{JWTSecretKey: "test-secret"}, db)
}

func adminRows(password string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "username", "email", "password", "role"}).
		AddRow(1, "admin", "admin@jobportal.com", password, models.RoleSuperAdmin)
}

func TestJWTService_GenerateAndExtract(t *testing.T) {
	service := newTestJWTService(nil)

	token, err := service.GenerateToken(7, models.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.AdminID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, "job-portal-admin", claims.Issuer)
}

func TestJWTService_ExtractClaims_WrongSecret(t *testing.T) {
	issuer := NewJWTService(&config.Config{JWTSecretKey: "other-secret"}, nil)
	token, err := issuer.GenerateToken(7, models.RoleAdmin)
	require.NoError(t, err)

	service := newTestJWTService(nil)
	_, err = service.ExtractClaims(token)
	assert.Error(t, err)
}

func TestJWTService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	testCases := []struct {
		name     string
		password string
		mock     func(mock sqlmock.Sqlmock)
		wantErr  error
	}{
		{
			name:     "邮箱不存在",
			password: "admin123",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM `admins` .*").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "密码错误",
			password: "wrong-password",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM `admins` .*").
					WillReturnRows(adminRows(string(hash)))
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "登录成功",
			password: "admin123",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM `admins` .*").
					WillReturnRows(adminRows(string(hash)))
			},
			wantErr: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tc.mock(mock)
			service := newTestJWTService(db)

			result, err := service.Login("admin@jobportal.com", tc.password)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, result.Token)
			assert.Equal(t, uint(1), result.Admin.ID)
		})
	}
}

func TestJWTService_Verify(t *testing.T) {
	t.Run("令牌有效且管理员存在", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT \\* FROM `admins` .*").
			WillReturnRows(adminRows("irrelevant"))
		service := newTestJWTService(db)

		token, err := service.GenerateToken(1, models.RoleSuperAdmin)
		require.NoError(t, err)

		admin, err := service.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, uint(1), admin.ID)
		assert.True(t, admin.IsSuperAdmin())
	})

	t.Run("管理员已被删除", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT \\* FROM `admins` .*").
			WillReturnError(gorm.ErrRecordNotFound)
		service := newTestJWTService(db)

		token, err := service.GenerateToken(1, models.RoleSuperAdmin)
		require.NoError(t, err)

		_, err = service.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("令牌格式非法", func(t *testing.T) {
		service := newTestJWTService(nil)

		_, err := service.Verify("not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
