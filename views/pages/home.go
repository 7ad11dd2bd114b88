package pages

import (
	"context"
	"io"
	"net/url"

	"counter/views/components"
	"counter/views/models"

	"github.com/a-h/templ"
)

const htmxScript = `https://unpkg.com/htmx.org@2.0.4`

// closeScript beacons the close URL on a real unload. Pages entering the
// back/forward cache keep their view.
const closeScript = `window.addEventListener("pagehide", function (e) {` +
	`if (e.persisted) { return; }` +
	`navigator.sendBeacon(document.getElementById("app").dataset.closeUrl);` +
	`});`

// CloseURL is where the page beacons when it is unloaded.
func CloseURL(id string) string {
	return "/views/" + url.PathEscape(id) + "/close"
}

// HomePage renders the full document for one counter view
func HomePage(v models.CounterView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := `<!DOCTYPE html><html lang="en"><head>` +
			`<meta charset="UTF-8">` +
			`<meta name="viewport" content="width=device-width, initial-scale=1.0">` +
			`<title>Counter</title>` +
			`<link rel="stylesheet" href="/static/style.css">` +
			`<script src="` + htmxScript + `"></script>` +
			`</head><body><main id="app"` +
			` data-view="` + templ.EscapeString(v.ID) + `"` +
			` data-close-url="` + templ.EscapeString(CloseURL(v.ID)) + `">`
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := components.CounterCard(v).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main><script>`+closeScript+`</script></body></html>`)
		return err
	})
}
