package handlers

import (
	"net/http"
)

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"status": "ok",
		"time":   a.now().UTC().Format("2006-01-02T15:04:05Z07:00"),
	})
}
