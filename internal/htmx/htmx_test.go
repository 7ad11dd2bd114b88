package htmx

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

type testComponent struct {
	body string
}

func (c testComponent) Render(_ context.Context, w io.Writer) error {
	_, err := w.Write([]byte(c.body))
	return err
}

func TestIsHTMXRequest(t *testing.T) {
	t.Run("missing_request_is_not_htmx", func(t *testing.T) {
		t.Parallel()
		if got := IsHTMXRequest(nil); got {
			t.Fatalf("IsHTMXRequest(nil) = true, want false")
		}
	})

	t.Run("plain_request_is_not_htmx", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if got := IsHTMXRequest(r); got {
			t.Fatalf("IsHTMXRequest(request) = true, want false")
		}
	})

	t.Run("true_request_is_htmx", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/views/x/increment", nil)
		r.Header.Set(RequestHeaderKey, "True")
		if got := IsHTMXRequest(r); !got {
			t.Fatalf("IsHTMXRequest(request) = false, want true")
		}
	})
}

func TestRender(t *testing.T) {
	fragment := testComponent{body: "<button>fragment</button>"}
	full := testComponent{body: "<html>full</html>"}

	tests := []struct {
		name   string
		htmx   bool
		noFull bool
		want   string
	}{
		{name: "plain_uses_full", want: "<html>full</html>"},
		{name: "htmx_uses_fragment", htmx: true, want: "<button>fragment</button>"},
		{name: "plain_without_full_uses_fragment", noFull: true, want: "<button>fragment</button>"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.htmx {
				r.Header.Set(RequestHeaderKey, "true")
			}
			w := httptest.NewRecorder()

			if tc.noFull {
				Render(w, r, fragment, nil)
			} else {
				Render(w, r, fragment, full)
			}
			if got := w.Body.String(); got != tc.want {
				t.Fatalf("body = %q, want %q", got, tc.want)
			}
		})
	}
}
