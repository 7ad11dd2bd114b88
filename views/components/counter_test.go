package components

import (
	"context"
	"strings"
	"testing"
	"time"

	"counter/views/models"
)

func render(t *testing.T, v models.CounterView, card bool) string {
	t.Helper()
	var b strings.Builder
	c := CounterButton(v)
	if card {
		c = CounterCard(v)
	}
	if err := c.Render(context.Background(), &b); err != nil {
		t.Fatalf("render: %v", err)
	}
	return b.String()
}

func TestCounterButton(t *testing.T) {
	got := render(t, models.CounterView{ID: "abc", Count: 3, Label: "count is 3"}, false)
	want := `<button type="submit" id="counter-button" hx-post="/views/abc/increment" hx-swap="outerHTML">count is 3</button>`
	if got != want {
		t.Fatalf("CounterButton = %q, want %q", got, want)
	}
}

func TestCounterButtonEscapesLabel(t *testing.T) {
	got := render(t, models.CounterView{ID: "abc", Label: "<b>"}, false)
	if strings.Contains(got, "<b>") {
		t.Fatalf("label not escaped: %q", got)
	}
}

func TestCounterCard(t *testing.T) {
	got := render(t, models.CounterView{ID: "abc", Label: "count is 0", HeadingHTML: "<h1>Title</h1>"}, true)
	if !strings.HasPrefix(got, "<div><h1>Title</h1></div>") {
		t.Fatalf("heading missing: %q", got)
	}
	if !strings.Contains(got, `<div class="card"><form method="post" action="/views/abc/increment"><button type="submit"`) {
		t.Fatalf("button must post through a form without htmx: %q", got)
	}
	if strings.Contains(got, "hx-trigger") {
		t.Fatalf("heartbeat rendered without interval: %q", got)
	}
}

func TestCounterCardHeartbeat(t *testing.T) {
	got := render(t, models.CounterView{ID: "abc", Label: "count is 0", Heartbeat: 15 * time.Minute}, true)
	want := `<div hidden hx-post="/views/abc/touch" hx-trigger="every 900s" hx-swap="none"></div>`
	if !strings.HasSuffix(got, want) {
		t.Fatalf("heartbeat missing, got %q", got)
	}
}
