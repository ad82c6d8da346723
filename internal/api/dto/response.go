package dto

// ApiResponse 统一响应信封
type ApiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

func OK(message string, data interface{}) ApiResponse {
	return ApiResponse{Success: true, Message: message, Data: data}
}

func Fail(message string) ApiResponse {
	return ApiResponse{Success: false, Message: message}
}

func FailWithErrors(message string, errs interface{}) ApiResponse {
	return ApiResponse{Success: false, Message: message, Errors: errs}
}

// ListResponse 分页列表信封
type ListResponse struct {
	List  interface{} `json:"list"`
	Total int64       `json:"total"`
}
