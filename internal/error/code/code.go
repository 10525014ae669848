package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未授权.
	StatusUnauthorized = 401
	// StatusForbidden - 403: 禁止访问.
	StatusForbidden = 403
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusConflict - 409: 资源冲突.
	StatusConflict = 409
	// StatusUnprocessable - 422: 数据无法处理.
	StatusUnprocessable = 422
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
	// StatusServiceUnavailable - 503: 服务暂不可用.
	StatusServiceUnavailable = 503
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 422: 请求参数验证错误.
	ErrValidation
	// ErrTokenInvalid - 401: 令牌无效.
	ErrTokenInvalid
	// ErrAPIKeyInvalid - 401: API key无效.
	ErrAPIKeyInvalid
	// ErrPermissionDenied - 403: 权限不足.
	ErrPermissionDenied
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests
)

// 管理员相关错误码 (101xxx).
const (
	// ErrAdminNotFound - 404: 管理员不存在.
	ErrAdminNotFound int = iota + 101000
	// ErrAdminAlreadyExist - 409: 管理员已存在.
	ErrAdminAlreadyExist
	// ErrLoginFailed - 401: 邮箱或密码错误.
	ErrLoginFailed
	// ErrLastSuperAdmin - 409: 不能删除最后一个超级管理员.
	ErrLastSuperAdmin
)

// 职位相关错误码 (102xxx).
const (
	// ErrJobNotFound - 404: 职位不存在.
	ErrJobNotFound int = iota + 102000
	// ErrJobStatusInvalid - 422: 职位状态非法.
	ErrJobStatusInvalid
)

// 分类相关错误码 (103xxx).
const (
	// ErrCategoryNotFound - 404: 分类不存在.
	ErrCategoryNotFound int = iota + 103000
	// ErrCategoryAlreadyExist - 409: 分类已存在.
	ErrCategoryAlreadyExist
	// ErrCategoryHasSubscribers - 409: 分类仍有订阅者.
	ErrCategoryHasSubscribers
	// ErrCategoryRequestNotFound - 404: 分类申请不存在.
	ErrCategoryRequestNotFound
	// ErrCategoryRequestSettled - 422: 分类申请已处理.
	ErrCategoryRequestSettled
)

// 留言与反馈相关错误码 (104xxx).
const (
	// ErrContactNotFound - 404: 联系留言不存在.
	ErrContactNotFound int = iota + 104000
	// ErrContactSettled - 422: 联系留言已处理.
	ErrContactSettled
	// ErrFeedbackNotFound - 404: 反馈不存在.
	ErrFeedbackNotFound
	// ErrFeedbackSettled - 422: 反馈已处理.
	ErrFeedbackSettled
)

// 订阅相关错误码 (105xxx).
const (
	// ErrSubscriptionNotFound - 404: 订阅不存在.
	ErrSubscriptionNotFound int = iota + 105000
)

// 安全警示相关错误码 (106xxx).
const (
	// ErrSafetyAlertNotFound - 404: 安全警示不存在.
	ErrSafetyAlertNotFound int = iota + 106000
	// ErrSafetyAlertStatusInvalid - 422: 安全警示状态非法.
	ErrSafetyAlertStatusInvalid
)

// 用户相关错误码 (107xxx).
const (
	// ErrUserNotFound - 404: 用户不存在.
	ErrUserNotFound int = iota + 107000
)

// 设置相关错误码 (108xxx).
const (
	// ErrSettingNotFound - 404: 设置项不存在.
	ErrSettingNotFound int = iota + 108000
)

// AI相关错误码 (109xxx).
const (
	// ErrAIUnavailable - 503: AI生成服务不可用.
	ErrAIUnavailable int = iota + 109000
	// ErrAIParse - 422: AI响应解析失败.
	ErrAIParse
	// ErrAIEmptyInput - 400: AI输入为空.
	ErrAIEmptyInput
)

// 数据库相关错误码 (110xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 110000
	// ErrRecordNotFound - 404: 记录不存在.
	ErrRecordNotFound
)
