package admingin

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	authlang "github.com/open-rails/sponsorkit/lang"
)

// LanguageConfig controls how the admin surface picks a response language.
type LanguageConfig struct {
	Supported  []string
	Default    string
	QueryParam string
}

func (c *LanguageConfig) defaulted() LanguageConfig {
	if c == nil {
		return LanguageConfig{Default: "en", QueryParam: "lang"}
	}
	out := *c
	if strings.TrimSpace(out.Default) == "" {
		out.Default = "en"
	}
	if strings.TrimSpace(out.QueryParam) == "" {
		out.QueryParam = "lang"
	}
	return out
}

var reSimpleLang = regexp.MustCompile(`^[a-z]{2}$`)

func normalizeLangCode(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return ""
	}
	if i := strings.IndexAny(s, "-_"); i >= 0 {
		s = s[:i]
	}
	if !reSimpleLang.MatchString(s) {
		return ""
	}
	return s
}

func supportedSet(supported []string) map[string]struct{} {
	if len(supported) == 0 {
		return nil
	}
	m := make(map[string]struct{}, len(supported))
	for _, s := range supported {
		if n := normalizeLangCode(s); n != "" {
			m[n] = struct{}{}
		}
	}
	return m
}

func pickFromAcceptLanguage(header string, supported map[string]struct{}) string {
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if i := strings.IndexByte(part, ';'); i >= 0 {
			part = part[:i]
		}
		code := normalizeLangCode(part)
		if code == "" {
			continue
		}
		if supported == nil {
			return code
		}
		if _, ok := supported[code]; ok {
			return code
		}
	}
	return ""
}

// resolveRequestLanguage: `?lang` query param > `Accept-Language` header > default.
func resolveRequestLanguage(c *gin.Context, cfg LanguageConfig) string {
	supported := supportedSet(cfg.Supported)

	if qp := normalizeLangCode(c.Query(cfg.QueryParam)); qp != "" {
		if supported == nil {
			return qp
		}
		if _, ok := supported[qp]; ok {
			return qp
		}
	}

	if al := pickFromAcceptLanguage(c.GetHeader("Accept-Language"), supported); al != "" {
		return al
	}

	if def := normalizeLangCode(cfg.Default); def != "" {
		return def
	}
	return "en"
}

// LanguageMiddleware infers the caller's language and attaches it to the
// request context for message localization.
func LanguageMiddleware(cfg *LanguageConfig) gin.HandlerFunc {
	conf := cfg.defaulted()
	return func(g *gin.Context) {
		language := resolveRequestLanguage(g, conf)
		g.Request = g.Request.WithContext(authlang.WithLanguage(g.Request.Context(), language))
		g.Next()
	}
}
