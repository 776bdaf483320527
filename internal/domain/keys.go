package domain

type CtxKey string

const (
	KeyRequestID CtxKey = "RequestID"
	KeySessionID CtxKey = "SessionID"
	KeyAdminSub  CtxKey = "AdminSubject"
)
