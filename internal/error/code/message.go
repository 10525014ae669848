package code

// 错误码消息映射，消息会原样展示给管理后台用户
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:          "Success",
	ErrUnknown:          "An unexpected error occurred. Please try again.",
	ErrBind:             "Invalid request. Please check your input and try again.",
	ErrValidation:       "The data provided is invalid. Please check and try again.",
	ErrTokenInvalid:     "Authentication required. Please log in.",
	ErrAPIKeyInvalid:    "Invalid or missing API key.",
	ErrPermissionDenied: "You do not have permission to perform this action.",
	ErrTooManyRequests:  "Too many requests. Please wait a moment and try again.",

	// 管理员相关错误码
	ErrAdminNotFound:     "Admin not found.",
	ErrAdminAlreadyExist: "This item already exists. Please use a different name.",
	ErrLoginFailed:       "Invalid email or password",
	ErrLastSuperAdmin:    "Cannot delete the last super admin account.",

	// 职位相关错误码
	ErrJobNotFound:      "The requested job was not found.",
	ErrJobStatusInvalid: "Invalid job status value.",

	// 分类相关错误码
	ErrCategoryNotFound:        "The requested category was not found.",
	ErrCategoryAlreadyExist:    "This item already exists. Please use a different name.",
	ErrCategoryHasSubscribers:  "This category has active subscribers and cannot be deleted.",
	ErrCategoryRequestNotFound: "The requested category request was not found.",
	ErrCategoryRequestSettled:  "This category request has already been processed.",

	// 留言与反馈相关错误码
	ErrContactNotFound:  "The requested contact message was not found.",
	ErrContactSettled:   "This contact message has already been processed.",
	ErrFeedbackNotFound: "The requested feedback was not found.",
	ErrFeedbackSettled:  "This feedback has already been processed.",

	// 订阅相关错误码
	ErrSubscriptionNotFound: "The requested subscription was not found.",

	// 安全警示相关错误码
	ErrSafetyAlertNotFound:      "The requested safety alert was not found.",
	ErrSafetyAlertStatusInvalid: "Invalid safety alert status value.",

	// 用户相关错误码
	ErrUserNotFound: "The requested user was not found.",

	// 设置相关错误码
	ErrSettingNotFound: "The requested setting was not found.",

	// AI相关错误码
	ErrAIUnavailable: "Service temporarily unavailable. Please try again later.",
	ErrAIParse:       "Could not parse AI response. Please try again or skip to manual entry.",
	ErrAIEmptyInput:  "Please enter a job description.",

	// 数据库相关错误码
	ErrDatabase:       "Server error. Please try again later.",
	ErrRecordNotFound: "The requested resource was not found.",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:          StatusOK,
	ErrUnknown:          StatusInternalServerError,
	ErrBind:             StatusBadRequest,
	ErrValidation:       StatusUnprocessable,
	ErrTokenInvalid:     StatusUnauthorized,
	ErrAPIKeyInvalid:    StatusUnauthorized,
	ErrPermissionDenied: StatusForbidden,
	ErrTooManyRequests:  StatusTooManyRequests,

	// 管理员相关错误码
	ErrAdminNotFound:     StatusNotFound,
	ErrAdminAlreadyExist: StatusConflict,
	ErrLoginFailed:       StatusUnauthorized,
	ErrLastSuperAdmin:    StatusConflict,

	// 职位相关错误码
	ErrJobNotFound:      StatusNotFound,
	ErrJobStatusInvalid: StatusUnprocessable,

	// 分类相关错误码
	ErrCategoryNotFound:        StatusNotFound,
	ErrCategoryAlreadyExist:    StatusConflict,
	ErrCategoryHasSubscribers:  StatusConflict,
	ErrCategoryRequestNotFound: StatusNotFound,
	ErrCategoryRequestSettled:  StatusUnprocessable,

	// 留言与反馈相关错误码
	ErrContactNotFound:  StatusNotFound,
	ErrContactSettled:   StatusUnprocessable,
	ErrFeedbackNotFound: StatusNotFound,
	ErrFeedbackSettled:  StatusUnprocessable,

	// 订阅相关错误码
	ErrSubscriptionNotFound: StatusNotFound,

	// 安全警示相关错误码
	ErrSafetyAlertNotFound:      StatusNotFound,
	ErrSafetyAlertStatusInvalid: StatusUnprocessable,

	// 用户相关错误码
	ErrUserNotFound: StatusNotFound,

	// 设置相关错误码
	ErrSettingNotFound: StatusNotFound,

	// AI相关错误码
	ErrAIUnavailable: StatusServiceUnavailable,
	ErrAIParse:       StatusUnprocessable,
	ErrAIEmptyInput:  StatusBadRequest,

	// 数据库相关错误码
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "An unexpected error occurred. Please try again."
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
