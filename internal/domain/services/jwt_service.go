package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Zohaib521321/job-potal-admin/internal/domain/models"
	"github.com/Zohaib521321/job-potal-admin/internal/infrastructure/config"
	"github.com/Zohaib521321/job-potal-admin/utils"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// ErrInvalidCredentials 登录凭证错误
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrInvalidToken 令牌无效或对应的管理员已不存在
var ErrInvalidToken = errors.New("invalid token")

// InterfaceJWTService 定义JWT服务接口
type InterfaceJWTService interface {
	GenerateToken(adminID uint, role string) (string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	ExtractClaims(tokenString string) (*JWTClaims, error)
	Login(email, password string) (*LoginResult, error)
	Verify(tokenString string) (*models.Admin, error)
}

// LoginResult 表示登录结果，结构与前端约定一致
type LoginResult struct {
	Admin models.Admin `json:"admin"`
	Token string       `json:"token"`
}

// JWTService 提供JWT相关服务
type JWTService struct {
	secretKey string
	issuer    string
	DB        *gorm.DB
}

// JWTClaims 定义JWT令牌的声明结构
type JWTClaims struct {
	AdminID uint   `json:"admin_id"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// NewJWTService 创建一个新的JWT服务
func NewJWTService(cfg *config.Config, db *gorm.DB) InterfaceJWTService {
	return &JWTService{
		secretKey: cfg.JWTSecretKey,
		issuer:    "job-portal-admin",
		DB:        db,
	}
}

// 1 GenerateToken 生成JWT令牌
func (s *JWTService) GenerateToken(adminID uint, role string) (string, error) {
	// 令牌有效期为24小时
	expirationTime := time.Now().Add(24 * time.Hour)

	claims := &JWTClaims{
		AdminID: adminID,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// 2 ValidateToken 验证JWT令牌
func (s *JWTService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// 验证签名算法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
}

// 3 ExtractClaims 从令牌中提取声明
func (s *JWTService) ExtractClaims(tokenString string) (*JWTClaims, error) {
	token, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	jwtClaims := &JWTClaims{}

	if adminID, ok := claims["admin_id"].(float64); ok {
		jwtClaims.AdminID = uint(adminID)
	}
	if role, ok := claims["role"].(string); ok {
		jwtClaims.Role = role
	}
	if issuer, ok := claims["iss"].(string); ok {
		jwtClaims.Issuer = issuer
	}

	if jwtClaims.AdminID == 0 {
		return nil, errors.New("invalid token claims")
	}

	return jwtClaims, nil
}

// 4 Login 处理管理员登录请求
func (s *JWTService) Login(email, password string) (*LoginResult, error) {
	var admin models.Admin
	if err := s.DB.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, admin.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(admin.ID, admin.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Admin: admin,
		Token: token,
	}, nil
}

// 5 Verify 校验令牌并返回当前管理员身份。
// 令牌解析失败、过期、或管理员记录已被删除，一律视为无效（fail closed）
func (s *JWTService) Verify(tokenString string) (*models.Admin, error) {
	claims, err := s.ExtractClaims(tokenString)
	if err != nil {
		return nil, ErrInvalidToken
	}

	var admin models.Admin
	if err := s.DB.First(&admin, claims.AdminID).Error; err != nil {
		return nil, ErrInvalidToken
	}

	return &admin, nil
}
