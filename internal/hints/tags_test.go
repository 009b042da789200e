package hints

import "testing"

func TestResolveKnownTag(t *testing.T) {
	def := Resolve("metainfo-parse-error")
	if def == nil {
		t.Fatal("metainfo-parse-error must be a known tag")
	}
	if def.Severity != SeverityError {
		t.Errorf("severity = %v, want error", def.Severity)
	}
}

func TestResolveUnknownTag(t *testing.T) {
	if def := Resolve("does-not-exist"); def != nil {
		t.Errorf("unknown tag resolved to %+v", def)
	}
}

func TestNewHintResolvesSeverity(t *testing.T) {
	h := New("desktop-file-missing", "desktop_id", "org.example.App.desktop")
	if h.Tag != "desktop-file-missing" {
		t.Errorf("tag = %q", h.Tag)
	}
	if h.Severity != SeverityWarning {
		t.Errorf("severity = %v, want warning", h.Severity)
	}
	if h.IsError() {
		t.Error("warning hint must not be an error")
	}
	if h.Vars["desktop_id"] != "org.example.App.desktop" {
		t.Errorf("vars = %v", h.Vars)
	}
}

func TestNewHintUnknownTag(t *testing.T) {
	h := New("flying-toaster")
	if h.Tag != "internal-unknown-tag" {
		t.Errorf("tag = %q, want internal-unknown-tag", h.Tag)
	}
	if !h.IsError() {
		t.Error("unknown tags must surface as error hints")
	}
	if h.Vars["tag"] != "flying-toaster" {
		t.Errorf("vars = %v, original tag must be preserved", h.Vars)
	}
}

func TestExplanationTemplate(t *testing.T) {
	h := New("metainfo-parse-error", "fname", "app.metainfo.xml", "msg", "unexpected EOF")
	got := h.Explanation()
	want := "Unable to parse the metainfo file 'app.metainfo.xml': unexpected EOF"
	if got != want {
		t.Errorf("Explanation() = %q, want %q", got, want)
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		sev  Severity
		want string
	}{
		{SeverityPedantic, "pedantic"},
		{SeverityInfo, "info"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{Severity(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.sev.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.sev, got, tt.want)
		}
	}
}
