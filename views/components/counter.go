package components

import (
	"context"
	"io"
	"net/url"
	"strconv"
	"time"

	"counter/views/models"

	"github.com/a-h/templ"
)

// ButtonID is the DOM id htmx swaps on every click.
const ButtonID = "counter-button"

// IncrementURL is the htmx target for a click on view id.
func IncrementURL(id string) string {
	return "/views/" + url.PathEscape(id) + "/increment"
}

// TouchURL keeps view id alive while it is displayed.
func TouchURL(id string) string {
	return "/views/" + url.PathEscape(id) + "/touch"
}

// CounterButton renders the button alone. It is the htmx fragment returned
// after each click. Without htmx the enclosing form posts the click.
func CounterButton(v models.CounterView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<button type="submit" id="`+ButtonID+`"`+
			` hx-post="`+templ.EscapeString(IncrementURL(v.ID))+`"`+
			` hx-swap="outerHTML">`+
			templ.EscapeString(v.Label)+
			`</button>`)
		return err
	})
}

// CounterCard renders the heading and the button.
func CounterCard(v models.CounterView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		card := `<div>` + v.HeadingHTML + `</div><div class="card">` +
			`<form method="post" action="` + templ.EscapeString(IncrementURL(v.ID)) + `">`
		if _, err := io.WriteString(w, card); err != nil {
			return err
		}
		if err := CounterButton(v).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</form></div>`); err != nil {
			return err
		}
		return heartbeat(v).Render(ctx, w)
	})
}

// heartbeat polls the touch endpoint so an open view is not swept as idle.
func heartbeat(v models.CounterView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if v.Heartbeat <= 0 {
			return nil
		}
		secs := int64(v.Heartbeat / time.Second)
		if secs < 1 {
			secs = 1
		}
		_, err := io.WriteString(w, `<div hidden`+
			` hx-post="`+templ.EscapeString(TouchURL(v.ID))+`"`+
			` hx-trigger="every `+strconv.FormatInt(secs, 10)+`s"`+
			` hx-swap="none"></div>`)
		return err
	})
}
