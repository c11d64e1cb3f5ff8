package app

import "testing"

func TestParseQuery(t *testing.T) {
	m, err := ParseQuery("?width=80&boundary=wrap&hud&width=90")
	if err != nil {
		t.Fatal(err)
	}
	if m["width"] != "90" || m["boundary"] != "wrap" || m["hud"] != "true" {
		t.Fatalf("ParseQuery = %v", m)
	}
	cfg, err := FromMap(m)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 90 || cfg.Boundary != "wrap" || !cfg.HUD {
		t.Fatalf("cfg = %+v", cfg)
	}

	if m, err := ParseQuery(""); err != nil || len(m) != 0 {
		t.Fatalf("empty query = %v, %v", m, err)
	}
	if _, err := ParseQuery("a=%zz"); err == nil {
		t.Fatal("malformed escape should fail")
	}
}
