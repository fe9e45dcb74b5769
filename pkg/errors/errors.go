package errors

import (
	"errors"
	"fmt"
)

// ServiceError is a failure reported to the caller through RETURNCODE/RETURNDESC.
type ServiceError struct {
	Code     string
	Describe string
	Err      error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s]:%s - %v", e.Code, e.Describe, e.Err)
	}
	return fmt.Sprintf("[%s]:%s", e.Code, e.Describe)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Is matches any ServiceError with the same code.
func (e *ServiceError) Is(target error) bool {
	t, ok := target.(*ServiceError)
	return ok && t.Code == e.Code
}

// Wrap returns a copy of e carrying err as its cause.
func (e *ServiceError) Wrap(err error) *ServiceError {
	return &ServiceError{Code: e.Code, Describe: e.Describe, Err: err}
}

var (
	ErrParsingJSON    = &ServiceError{Code: "1001", Describe: "非 JSON 格式"}
	ErrParsingHeader  = &ServiceError{Code: "1002", Describe: "上行電文 Header 解析異常"}
	ErrParsingTranRq  = &ServiceError{Code: "1003", Describe: "上行電文欄位檢核異常"}
	ErrPermission     = &ServiceError{Code: "2001", Describe: "沒有權限訪問請求資源"}
	ErrDBInsert       = &ServiceError{Code: "2002", Describe: "Insert Database 發生異常"}
	ErrTimeout        = &ServiceError{Code: "2003", Describe: "連線逾時"}
	ErrInternalServer = &ServiceError{Code: "9999", Describe: "其他異常錯誤"}
)

// AsServiceError returns the ServiceError in err's chain, or ErrInternalServer wrapping err.
func AsServiceError(err error) *ServiceError {
	var se *ServiceError
	if errors.As(err, &se) {
		return se
	}
	return ErrInternalServer.Wrap(err)
}
