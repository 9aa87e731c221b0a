package html

import (
	"fmt"

	"stocktake/frontend/shared/nav"
)

// RenderLayout wraps a screen body in the app shell: head, content
// column, bottom tab bar and the CSRF form script.
func RenderLayout(title, activeTab, body string) string {
	return fmt.Sprintf(
		"<!doctype html><html><head><meta charset=\"utf-8\"><meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"><title>%s</title><link rel=\"stylesheet\" href=\"/assets/app.css\"></head><body><div class=\"shell\">%s</div>%s%s</body></html>",
		title, body, nav.RenderTabBar(activeTab), CSRFFormScript(),
	)
}
