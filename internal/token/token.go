// Package token converts wallpaper configs to and from the opaque strings
// carried in wallpaper URLs. A token is unpadded URL-safe base64 of a small
// JSON object with single- or two-letter keys.
package token

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"wallpaper/internal/domain/wallconfig"
)

const (
	versionLegacy  = 1
	versionCurrent = 2
)

// ErrInvalidRamadanConfig is returned by Encode when handed a Ramadan config
// that does not survive normalization.
var ErrInvalidRamadanConfig = errors.New("token: invalid ramadan config")

type lifePayload struct {
	V int    `json:"v"`
	M string `json:"m"`
	D string `json:"d"`
	Z string `json:"z"`
	T string `json:"t"`
}

type ramadanPayload struct {
	V  int     `json:"v"`
	M  string  `json:"m"`
	C  string  `json:"c"`
	N  string  `json:"n"`
	La float64 `json:"la"`
	Lo float64 `json:"lo"`
	Z  string  `json:"z"`
	Cm int     `json:"cm"`
	T  string  `json:"t"`
	// Th is only written for non-default themes so classic tokens keep their original shape.
	Th string `json:"th,omitempty"`
}

// rawPayload accepts every version; values are checked by the normalizers.
type rawPayload struct {
	V  any `json:"v"`
	M  any `json:"m"`
	D  any `json:"d"`
	Z  any `json:"z"`
	T  any `json:"t"`
	C  any `json:"c"`
	N  any `json:"n"`
	La any `json:"la"`
	Lo any `json:"lo"`
	Cm any `json:"cm"`
	Th any `json:"th"`
}

// Encode serializes cfg as a current-version token. Life configs always
// encode; Ramadan configs are re-validated first.
func Encode(cfg wallconfig.Config) (string, error) {
	var payload any
	switch c := cfg.(type) {
	case wallconfig.Life:
		safe := wallconfig.NormalizeLife(c.Input())
		payload = lifePayload{
			V: versionCurrent,
			M: string(wallconfig.ModeLife),
			D: safe.DateOfBirth,
			Z: safe.TimeZone,
			T: safe.Title,
		}
	case wallconfig.Ramadan:
		safe, ok := wallconfig.NormalizeRamadan(c.Input())
		if !ok {
			return "", ErrInvalidRamadanConfig
		}
		p := ramadanPayload{
			V:  versionCurrent,
			M:  string(wallconfig.ModeRamadan),
			C:  safe.City,
			N:  safe.Country,
			La: safe.Latitude,
			Lo: safe.Longitude,
			Z:  safe.TimeZone,
			Cm: safe.CalculationMethod,
			T:  safe.Title,
		}
		if safe.Theme != wallconfig.DefaultTheme {
			p.Th = string(safe.Theme)
		}
		payload = p
	default:
		return "", fmt.Errorf("token: unsupported config %T", cfg)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return "", fmt.Errorf("token: encode payload: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// MustEncode is Encode for configs that are known to be valid.
func MustEncode(cfg wallconfig.Config) string {
	tok, err := Encode(cfg)
	if err != nil {
		panic(err)
	}
	return tok
}

// Decode parses tok. It never panics; any malformed, unknown-version or
// unnormalizable token reports false.
func Decode(tok string) (wallconfig.Config, bool) {
	tok = strings.TrimRight(strings.TrimSpace(tok), "=")
	if tok == "" {
		return nil, false
	}
	raw, err := base64.RawURLEncoding.DecodeString(tok)
	if err != nil {
		return nil, false
	}
	var p rawPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, false
	}

	version, ok := p.V.(float64)
	if !ok {
		return nil, false
	}
	switch version {
	case versionCurrent:
		switch p.M {
		case string(wallconfig.ModeLife):
			return decodeLife(p), true
		case string(wallconfig.ModeRamadan):
			cfg, ok := wallconfig.NormalizeRamadan(wallconfig.RamadanInput{
				City:              p.C,
				Country:           p.N,
				Latitude:          p.La,
				Longitude:         p.Lo,
				TimeZone:          p.Z,
				CalculationMethod: p.Cm,
				Title:             p.T,
				Theme:             p.Th,
			})
			if !ok {
				return nil, false
			}
			return cfg, true
		}
		return nil, false
	case versionLegacy:
		return decodeLife(p), true
	}
	return nil, false
}

func decodeLife(p rawPayload) wallconfig.Life {
	return wallconfig.NormalizeLife(wallconfig.LifeInput{DateOfBirth: p.D, TimeZone: p.Z, Title: p.T})
}
