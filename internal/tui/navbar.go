package tui

import (
	"strings"

	"github.com/MKhiriev/go-recipe-book/models"
)

const appName = "Recipe App"

func renderNavbar(s models.Session) string {
	items := []string{titleStyle.Render(appName), "[H] Home"}

	if s.IsAuthenticated() && s.Profile != nil {
		items = append(items,
			"[D] Dashboard",
			"Hello, "+s.Profile.FirstName+"!",
			"[L] Logout",
		)
	} else {
		items = append(items, "[L] Login")
	}

	return navbarStyle.Render(strings.Join(items, "   "))
}
