package handlers

import (
	"errors"
	"net"
	"net/http"

	"wallpaper/internal/domain"
)

// Locate suggests a place for the caller's IP so the setup form can be prefilled.
func (a *App) Locate(w http.ResponseWriter, r *http.Request) {
	if a.Locator == nil {
		a.error(w, http.StatusServiceUnavailable, "unavailable", "Location lookup is not available.")
		return
	}
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}
	city, err := a.Locator.Locate(ip)
	if err != nil {
		if !errors.Is(err, domain.ErrLocationUnavailable) {
			a.Logger.Warn().Err(err).Msg("locate client")
		}
		a.error(w, http.StatusServiceUnavailable, "unavailable", "Location could not be determined.")
		return
	}
	a.json(w, http.StatusOK, city)
}
