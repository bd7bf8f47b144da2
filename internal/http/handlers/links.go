package handlers

import (
	"strconv"

	"wallpaper/internal/wallpaper"
)

type links struct {
	WallpaperURL  string `json:"wallpaperUrl"`
	WallpaperPath string `json:"wallpaperPath"`
	SetupURL      string `json:"setupUrl"`
}

// wallpaperPath is the device-sized render path for tok.
func wallpaperPath(tok string) string {
	return "/api/wallpaper/" + tok +
		"?w=" + strconv.Itoa(wallpaper.DefaultWidth) +
		"&h=" + strconv.Itoa(wallpaper.DefaultHeight)
}

func linksFor(origin, tok string) links {
	path := wallpaperPath(tok)
	return links{
		WallpaperURL:  origin + path,
		WallpaperPath: path,
		SetupURL:      origin + "/setup/" + tok,
	}
}
