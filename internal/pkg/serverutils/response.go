package serverutils

type BaseResponse[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func ErrorResponse(code int, message string) BaseResponse[any] {
	return BaseResponse[any]{
		Code:    code,
		Message: message,
	}
}

func ValidationErrorResponse(details []ErrorDetail) BaseResponse[[]ErrorDetail] {
	return BaseResponse[[]ErrorDetail]{
		Code:    400,
		Message: "validation failed",
		Data:    details,
	}
}
