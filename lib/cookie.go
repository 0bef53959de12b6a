package lib

import (
	"net/http"
	"time"
)

const (
	AccessCookieName  = "access_token"
	RefreshCookieName = "refresh_token"
	CSRFCookieName    = "csrf_token"
)

// SetCookie sets a secure, HttpOnly cookie for authentication/session usage
func SetCookie(key, val string, expiry time.Time, production bool, w http.ResponseWriter) {
	sameSite := http.SameSiteLaxMode
	secure := false

	if production {
		sameSite = http.SameSiteNoneMode
		secure = true
	}

	cookie := &http.Cookie{
		Name:     key,
		Value:    val,
		Expires:  expiry,
		Path:     "/",
		Secure:   secure,
		SameSite: sameSite,
		HttpOnly: true,
	}

	http.SetCookie(w, cookie)
}

func GetCookieValue(key string, r *http.Request) (string, error) {
	cookie, err := r.Cookie(key)
	if err != nil {
		return "", err
	}
	return cookie.Value, nil
}

// ClearCookie removes the cookie from the browser
func ClearCookie(key string, production bool, w http.ResponseWriter) {
	sameSite := http.SameSiteLaxMode
	secure := false

	if production {
		sameSite = http.SameSiteNoneMode
		secure = true
	}

	cookie := &http.Cookie{
		Name:     key,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
		Secure:   secure,
		SameSite: sameSite,
		HttpOnly: true,
	}

	http.SetCookie(w, cookie)
}

// SetCSRFCookie sets the CSRF token cookie. It must stay readable by the
// frontend so the value can be echoed back in the X-CSRF-Token header
// (double-submit check).
func SetCSRFCookie(val string, expiry time.Time, production bool, w http.ResponseWriter) {
	sameSite := http.SameSiteLaxMode
	secure := false

	if production {
		sameSite = http.SameSiteNoneMode
		secure = true
	}

	cookie := &http.Cookie{
		Name:     CSRFCookieName,
		Value:    val,
		Expires:  expiry,
		MaxAge:   int(time.Until(expiry).Seconds()),
		Path:     "/",
		Secure:   secure,
		SameSite: sameSite,
		HttpOnly: false,
	}

	http.SetCookie(w, cookie)
}
