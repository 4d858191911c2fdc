// SPDX-License-Identifier: MIT
package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func csrfRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CSRFMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(200, GetCSRFTokenHTML(c)) })
	r.POST("/ui/save", func(c *gin.Context) { c.Status(200) })
	return r
}

func TestCSRFIssuesStrictCookie(t *testing.T) {
	r := csrfRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != csrfCookieName {
		t.Fatalf("Expected csrf cookie, got %v", cookies)
	}
	if !cookies[0].HttpOnly || cookies[0].SameSite != http.SameSiteStrictMode {
		t.Errorf("Expected HttpOnly SameSite=Strict cookie, got %+v", cookies[0])
	}
	if !strings.Contains(w.Body.String(), `value="`+cookies[0].Value+`"`) {
		t.Errorf("Expected hidden field with the cookie token, got %s", w.Body.String())
	}
}

func TestCSRFValidatesPosts(t *testing.T) {
	r := csrfRouter()
	token := "known-token"

	post := func(form url.Values, header string) int {
		req := httptest.NewRequest("POST", "/ui/save", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: token})
		if header != "" {
			req.Header.Set(csrfHeaderName, header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := post(url.Values{}, ""); code != 403 {
		t.Errorf("Expected 403 without token, got %d", code)
	}
	if code := post(url.Values{csrfFormField: {"other"}}, ""); code != 403 {
		t.Errorf("Expected 403 for mismatched token, got %d", code)
	}
	if code := post(url.Values{csrfFormField: {token}}, ""); code != 200 {
		t.Errorf("Expected form token to pass, got %d", code)
	}
	if code := post(url.Values{}, token); code != 200 {
		t.Errorf("Expected header token to pass, got %d", code)
	}
}

func TestSameOriginMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SameOriginMiddleware())
	r.POST("/api/saved", func(c *gin.Context) { c.Status(201) })

	for origin, want := range map[string]int{
		"":                          201,
		"http://example.com":        201,
		"http://evil.test":          403,
		"http://example.com.evil.x": 403,
	} {
		req := httptest.NewRequest("POST", "/api/saved", nil)
		if origin != "" {
			req.Header.Set("Origin", origin)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != want {
			t.Errorf("Origin %q: expected %d, got %d", origin, want, w.Code)
		}
	}
}
