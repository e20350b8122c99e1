package utils

import (
	"fmt"
)

type ServiceError struct {
	Code uint32
	Msg  string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("ServiceError: code=%d, msg=%s", e.Code, e.Msg)
}

// Is 错误码相同即视为同一种错误，With附加的信息不影响判断
func (e *ServiceError) Is(target error) bool {
	t, ok := target.(*ServiceError)
	return ok && t.Code == e.Code
}

// With 附加具体信息，返回新的错误
func (e *ServiceError) With(detail string) *ServiceError {
	return &ServiceError{Code: e.Code, Msg: e.Msg + ": " + detail}
}

var (
	// business error code: [500000, 600000)
	ErrOpenCsv        = &ServiceError{500001, "open csv error"}
	ErrReadCsv        = &ServiceError{500002, "read csv error"}
	ErrEmptyHeader    = &ServiceError{500003, "csv header is empty"}
	ErrEmptyRelation  = &ServiceError{500004, "relation has no rows"}
	ErrParameter      = &ServiceError{500005, "invalid parameter"}
	ErrColumnNotExist = &ServiceError{500006, "column not exist"}
	ErrDuplicateName  = &ServiceError{500007, "duplicate column name"}
	ErrWriteResult    = &ServiceError{500008, "write result error"}
)
