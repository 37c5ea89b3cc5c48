package repositories

import "errors"

// 驗證失敗，Reason為可直接顯示給使用者的原因
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func newValidationError(reason string) error {
	return &ValidationError{Reason: reason}
}

// 判斷錯誤是否為驗證失敗
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

var (
	ErrUsernameExists = errors.New("使用者名稱已被使用")
	ErrItemNameExists = errors.New("餐點名稱已被使用")
	ErrItemNotFound   = errors.New("找不到此餐點")
)
