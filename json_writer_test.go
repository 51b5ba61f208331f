package patrimoine

import "testing"

func TestJsonObjectWriter(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var w jsonObjectWriter
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "{}"; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("field order is preserved", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("command", "deposit")
		w.Append("amount", 100)
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"command":"deposit","amount":100}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("optional skips zero values", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("holding", "cash")
		w.Optional("memo", "")
		w.Optional("currency", "EUR")
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"holding":"cash","currency":"EUR"}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("unmarshalable value fails", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("bad", func() {})
		if _, err := w.MarshalJSON(); err == nil {
			t.Error("MarshalJSON succeeded on an unmarshalable value, want error")
		}
	})
}
