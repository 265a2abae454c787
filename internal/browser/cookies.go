package browser

import (
	"encoding/json"
	"os"

	"github.com/playwright-community/playwright-go"
)

//Cookie represents a browser cookie exported to a JSON file
type Cookie struct {
	Name     string  `json:"name"`
	Value    string  `json:"value"`
	Domain   string  `json:"domain"`
	Path     string  `json:"path"`
	Expires  float64 `json:"expires"`
	HTTPOnly bool    `json:"httpOnly"`
	Secure   bool    `json:"secure"`
	SameSite string  `json:"sameSite"`
}

// LoadCookies reads an exported cookie file and converts it to the shape
// BrowserContext.AddCookies accepts. A missing file is the caller's cue to
// fall back to credential login.
func LoadCookies(path string) ([]playwright.OptionalCookie, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cookies []Cookie
	if err := json.Unmarshal(data, &cookies); err != nil {
		return nil, err
	}

	out := make([]playwright.OptionalCookie, len(cookies))
	for i, c := range cookies {
		out[i] = c.ToOptional()
	}
	return out, nil
}

func (c Cookie) ToOptional() playwright.OptionalCookie {
	cookie := playwright.OptionalCookie{
		Name:  c.Name,
		Value: c.Value,
	}

	if c.Domain != "" {
		cookie.Domain = playwright.String(c.Domain)
	}

	if c.Path != "" {
		cookie.Path = playwright.String(c.Path)
	}

	if c.Expires > 0 {
		cookie.Expires = playwright.Float(c.Expires)
	}

	if c.HTTPOnly {
		cookie.HttpOnly = playwright.Bool(true)
	}

	if c.Secure {
		cookie.Secure = playwright.Bool(true)
	}

	//Browser exports disagree on capitalization
	switch c.SameSite {
	case "Lax", "lax":
		cookie.SameSite = playwright.SameSiteAttributeLax
	case "Strict", "strict":
		cookie.SameSite = playwright.SameSiteAttributeStrict
	case "None", "none":
		cookie.SameSite = playwright.SameSiteAttributeNone
	}

	return cookie
}
