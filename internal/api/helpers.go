package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/neuralforge-ai/consultation-api/internal/entity"
)

type ResponseError struct {
	Detail string `json:"detail"`
}

func SendErr(ctx context.Context, w http.ResponseWriter, code int, err error, msg string) {
	l, ok := ctx.Value(entity.CtxKeyLogger{}).(*slog.Logger)
	if ok {
		l.Error("api error", "error", err, "code", code)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err = json.NewEncoder(w).Encode(ResponseError{Detail: msg})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "")
		return
	}
}
