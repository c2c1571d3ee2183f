package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"net/http"
	"regexp"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/unicode/norm"

	"github.com/Bhavishya0149/Real-Real-Estate/models"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug lowercases, strips accents and collapses everything else to
// hyphens. Used for listing-scoped object-store prefixes.
func GenerateSlug(name string) string {
	t := norm.NFD.String(name)
	var b strings.Builder
	for _, r := range t {
		if unicode.Is(unicode.Mn, r) {
			continue // remove accent marks
		}
		b.WriteRune(r)
	}

	s := strings.ToLower(b.String())
	s = slugPattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// RandomHexString returns n random bytes hex-encoded. Used for email and
// mobile verification strings.
func RandomHexString(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic(err) // crypto/rand failure is unrecoverable
	}
	return hex.EncodeToString(buf)
}

// RespondError writes the uniform error envelope. APIError values keep their
// status and message; anything else is logged and collapses to a 500 with no
// internals leaked.
func RespondError(c *gin.Context, err error) {
	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
		return
	}
	log.Printf("unexpected error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// AbortError is RespondError plus request abortion, for middleware.
func AbortError(c *gin.Context, err error) {
	RespondError(c, err)
	c.Abort()
}

func SetAccessCookie(c *gin.Context, token string, maxAgeSeconds int, secure bool, domain string) {
	setAuthCookie(c, "accessToken", token, maxAgeSeconds, secure, domain)
}

func SetRefreshCookie(c *gin.Context, token string, maxAgeSeconds int, secure bool, domain string) {
	setAuthCookie(c, "refreshToken", token, maxAgeSeconds, secure, domain)
}

func ClearAuthCookies(c *gin.Context, secure bool, domain string) {
	setAuthCookie(c, "accessToken", "", -1, secure, domain)
	setAuthCookie(c, "refreshToken", "", -1, secure, domain)
}

func setAuthCookie(c *gin.Context, name, value string, maxAgeSeconds int, secure bool, domain string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   domain,
		MaxAge:   maxAgeSeconds,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}
