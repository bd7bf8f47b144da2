package domain

import "time"

// RamadanTimings carries one day of prayer times as reported by the timings upstream.
// Clock values are 24-hour "HH:MM" strings; anything else is rendered verbatim.
type RamadanTimings struct {
	GregorianDate string `json:"gregorianDate"`
	HijriDate     string `json:"hijriDate"`
	HijriMonth    string `json:"hijriMonth"`
	HijriDay      int    `json:"hijriDay"`
	Sehri         string `json:"sehri"`
	Fajr          string `json:"fajr"`
	Dhuhr         string `json:"dhuhr"`
	Asr           string `json:"asr"`
	Maghrib       string `json:"maghrib"`
	Isha          string `json:"isha"`
	Iftar         string `json:"iftar"`
}

// TimingsQuery identifies the day and place a timings lookup is for.
type TimingsQuery struct {
	Latitude  float64
	Longitude float64
	TimeZone  string
	Method    int
	At        time.Time
}

// GeocodedCity is a resolved place name with the data needed to build a Ramadan config.
type GeocodedCity struct {
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	TimeZone  string  `json:"timeZone"`
}
