package resolverrpc

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"xdao.co/arc/model"
	"xdao.co/arc/resolver"
)

// mapErr projects protocol and boundary errors onto gRPC status codes. The
// coded error string becomes the status message so clients can recover the
// code without a side channel.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok && status.Code(err) != codes.Unknown {
		return err
	}

	code := codes.Internal
	switch {
	case resolver.IsAccessDenied(err):
		code = codes.PermissionDenied
	case resolver.IsInsufficientValue(err), resolver.IsNotPayable(err):
		code = codes.FailedPrecondition
	case resolver.IsKind(err, resolver.KindValidation), resolver.IsKind(err, resolver.KindConfig):
		code = codes.InvalidArgument
	}

	var ce *model.CodedError
	if errors.As(err, &ce) {
		switch ce.Code {
		case model.ErrAccessDenied:
			code = codes.PermissionDenied
		case model.ErrInsufficientValue, model.ErrNotPayable:
			code = codes.FailedPrecondition
		case model.ErrInvalidRequest, model.ErrInvalidAddress, model.ErrInvalidUID, model.ErrInvalidValue:
			code = codes.InvalidArgument
		}
		return status.Error(code, ce.Error())
	}
	return status.Error(code, model.MapErr(err).Error())
}

// FromStatus converts a client-side RPC error back into a coded error. Codes
// are recovered from the status message when the server embedded one.
func FromStatus(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return model.NewError(model.ErrInternal, err.Error())
	}
	code := model.ErrInternal
	switch st.Code() {
	case codes.PermissionDenied:
		code = model.ErrAccessDenied
	case codes.FailedPrecondition:
		code = model.ErrInsufficientValue
	case codes.InvalidArgument:
		code = model.ErrInvalidRequest
	}
	msg := st.Message()
	for _, c := range []model.ErrorCode{
		model.ErrInvalidRequest, model.ErrInvalidAddress, model.ErrInvalidUID,
		model.ErrInvalidValue, model.ErrAccessDenied, model.ErrInsufficientValue,
		model.ErrNotPayable, model.ErrInternal,
	} {
		if prefixed(msg, string(c)+": ") {
			return model.NewError(c, msg[len(c)+2:])
		}
	}
	return model.NewError(code, msg)
}

func prefixed(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
