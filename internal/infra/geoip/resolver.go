package geoip

import (
	"fmt"
	"net"
	"strings"

	"github.com/oschwald/geoip2-golang"

	"wallpaper/internal/domain"
)

// Locator resolves an approximate place for a client IP.
type Locator interface {
	Locate(ip string) (domain.GeocodedCity, error)
}

// Resolver provides city lookups backed by a MaxMind GeoIP2 City database.
type Resolver struct {
	reader *geoip2.Reader
}

// NewResolver opens the GeoIP database at the given path. When the path is
// empty, a resolver that always reports domain.ErrLocationUnavailable is returned.
func NewResolver(path string) (*Resolver, error) {
	if strings.TrimSpace(path) == "" {
		return &Resolver{}, nil
	}
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("geoip: open database: %w", err)
	}
	return &Resolver{reader: reader}, nil
}

// Locate returns the city, country, coordinates and zone recorded for ip.
func (r *Resolver) Locate(ip string) (domain.GeocodedCity, error) {
	if r == nil || r.reader == nil {
		return domain.GeocodedCity{}, domain.ErrLocationUnavailable
	}
	parsed := net.ParseIP(strings.TrimSpace(ip))
	if parsed == nil {
		return domain.GeocodedCity{}, fmt.Errorf("geoip: invalid ip %q: %w", ip, domain.ErrLocationUnavailable)
	}
	record, err := r.reader.City(parsed)
	if err != nil {
		return domain.GeocodedCity{}, fmt.Errorf("geoip: lookup city: %w", err)
	}
	loc := record.Location
	if loc.TimeZone == "" || (loc.Latitude == 0 && loc.Longitude == 0) {
		return domain.GeocodedCity{}, domain.ErrLocationUnavailable
	}
	return domain.GeocodedCity{
		City:      record.City.Names["en"],
		Country:   record.Country.Names["en"],
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		TimeZone:  loc.TimeZone,
	}, nil
}

// Close closes the underlying database reader.
func (r *Resolver) Close() error {
	if r == nil || r.reader == nil {
		return nil
	}
	return r.reader.Close()
}
