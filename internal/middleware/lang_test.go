package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"

	"github.com/picup-app/picup/pkg/code"
)

// The notification language is owned by the settings document. Request
// language hints bind a translator for validation messages only and
// must never leak into the process-wide notification language.
func TestLangKeepsNotificationLanguage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	uni := ut.New(en.New(), en.New(), zh.New())

	code.SetGlobalDefaultLang("zh_cn")
	t.Cleanup(func() { code.SetGlobalDefaultLang("en") })

	tests := []struct {
		name   string
		target string
	}{
		{name: "unsupported query lang", target: "/api/settings?lang=fr"},
		{name: "supported query lang", target: "/api/settings?lang=en"},
		{name: "no lang", target: "/api/settings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", tt.target, nil)

			LangWithTranslator(uni)(c)

			if _, ok := c.Get("trans"); !ok {
				t.Errorf("translator should be bound on the context")
			}
			if got := code.GetGlobalDefaultLang(); got != "zh_cn" {
				t.Errorf("notification language changed: got %q, want %q", got, "zh_cn")
			}
		})
	}
}
