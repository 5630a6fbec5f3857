package errno

import (
	"fmt"

	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/pkg/errors"
)

const (
	SuccessCode         = consts.StatusOK
	BadRequestCode      = consts.StatusBadRequest
	UnauthorizedCode    = consts.StatusUnauthorized
	ForbiddenCode       = consts.StatusForbidden
	NotFoundCode        = consts.StatusNotFound
	ConflictCode        = consts.StatusConflict
	TooManyRequestsCode = consts.StatusTooManyRequests
	ServiceErrCode      = consts.StatusInternalServerError
)

// ErrNo is a typed failure whose code doubles as the HTTP status of the response.
type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

// Is matches on the code only, so errors.Is(err, NotFoundErr) holds for any
// NotFound regardless of its message.
func (e ErrNo) Is(target error) bool {
	t, ok := target.(ErrNo)
	return ok && t.ErrCode == e.ErrCode
}

var (
	Success            = NewErrNo(SuccessCode, "Success")
	RequestErr         = NewErrNo(BadRequestCode, "Bad request")
	InvalidIDErr       = NewErrNo(BadRequestCode, "Invalid id")
	UnauthorizedErr    = NewErrNo(UnauthorizedCode, "Unauthorized request")
	ForbiddenErr       = NewErrNo(ForbiddenCode, "You are not authorized to perform this action")
	NotFoundErr        = NewErrNo(NotFoundCode, "Resource not found")
	ConflictErr        = NewErrNo(ConflictCode, "Resource already exists")
	TooManyRequestsErr = NewErrNo(TooManyRequestsCode, "Too many requests")
	ServiceErr         = NewErrNo(ServiceErrCode, "Internal server error")
)

// ConvertErr maps any error onto an ErrNo. Untyped errors become ServiceErr
// with its generic message; the cause is for logs only.
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	return ServiceErr
}

func IsNotFound(err error) bool {
	return errors.Is(err, NotFoundErr)
}
