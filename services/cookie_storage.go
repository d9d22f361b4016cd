package services

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const cookieMaxAge = 7 * 24 * 60 * 60

// CookieStorage keeps the session in browser cookies. Writes are also
// visible to later reads within the same request.
type CookieStorage struct {
	c       *gin.Context
	secure  bool
	pending map[string]*string
}

func NewCookieStorage(c *gin.Context, secure bool) *CookieStorage {
	return &CookieStorage{c: c, secure: secure, pending: make(map[string]*string)}
}

func (s *CookieStorage) Get(key string) (string, bool) {
	if v, ok := s.pending[key]; ok {
		if v == nil {
			return "", false
		}
		return *v, true
	}
	v, err := s.c.Cookie(key)
	if err != nil {
		return "", false
	}
	return v, true
}

func (s *CookieStorage) Set(key, value string) {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(key, value, cookieMaxAge, "/", "", s.secure, true)
	s.pending[key] = &value
}

func (s *CookieStorage) Remove(key string) {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(key, "", -1, "/", "", s.secure, true)
	s.pending[key] = nil
}
