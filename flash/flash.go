// Package flash carries one-shot notices across a redirect in an
// HMAC-signed cookie, so a tampered message is dropped rather than shown.
package flash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"
	"time"
)

const cookieName = "flash"

// Flash signs and reads flash cookies with the session secret from config.
type Flash struct {
	secret []byte
}

func New(secret string) *Flash {
	return &Flash{secret: []byte(secret)}
}

func (f *Flash) sign(msg string) string {
	mac := hmac.New(sha256.New, f.secret)
	mac.Write([]byte(msg))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// Set stores msg in the flash cookie for the next request.
func (f *Flash) Set(w http.ResponseWriter, msg string) {
	encoded := base64.RawURLEncoding.EncodeToString([]byte(msg))
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    encoded + "." + f.sign(encoded),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop returns the flash message, if any, and clears the cookie.
// Messages with a bad signature are discarded silently.
func (f *Flash) Pop(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(cookieName)
	if err != nil || c.Value == "" {
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	parts := strings.Split(c.Value, ".")
	if len(parts) != 2 {
		return ""
	}
	encoded, sig := parts[0], parts[1]
	if !hmac.Equal([]byte(sig), []byte(f.sign(encoded))) {
		return ""
	}
	msg, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return ""
	}
	return string(msg)
}
