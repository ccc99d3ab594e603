// File: internal/dto/http_error.go
package dto

// HTTPError 全域錯誤響應模型
// swagger:model dto.HTTPError
type HTTPError struct {
	// message 錯誤描述
	Message string `json:"message" example:"Invalid email or password"`
}

// FieldError 單一欄位的驗證錯誤
// swagger:model dto.FieldError
type FieldError struct {
	Field   string `json:"field" example:"email"`
	Message string `json:"message" example:"Valid email is required"`
}

// ValidationError 驗證失敗時一次回傳所有欄位錯誤
// swagger:model dto.ValidationError
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

// MsgInvalidBody 請求內容無法解析時的訊息
const MsgInvalidBody = "Request body is malformed"

// BodyError 請求內容無法 Bind 時，以 body 欄位回傳驗證錯誤
func BodyError() ValidationError {
	return ValidationError{Errors: []FieldError{{Field: "body", Message: MsgInvalidBody}}}
}
