package entity

type CtxKeyLogger struct{}
