package pipeline

import "testing"

func TestSniffJSON_TypedScript(t *testing.T) {
	page := `<html><head>
<script type="application/json">{"profile": {"username": "nova"}}</script>
</head></html>`

	body, ok := SniffJSON([]byte(page))
	if !ok {
		t.Fatal("payload not found")
	}
	if string(body) != `{"profile": {"username": "nova"}}` {
		t.Errorf("body = %q", body)
	}
}

func TestSniffJSON_WellKnownIDs(t *testing.T) {
	for _, id := range []string{"__NEXT_DATA__", "__NUXT_DATA__", "initial-state"} {
		page := `<html><body><script id="` + id + `">{"pk": 1}</script></body></html>`
		if _, ok := SniffJSON([]byte(page)); !ok {
			t.Errorf("id %q not recognized", id)
		}
	}
}

func TestSniffJSON_SkipsNonJSONScripts(t *testing.T) {
	page := `<html><head>
<script>var x = 1;</script>
<script type="application/json">not json at all</script>
<script type="application/json">{"real": true}</script>
</head></html>`

	body, ok := SniffJSON([]byte(page))
	if !ok {
		t.Fatal("payload not found")
	}
	if string(body) != `{"real": true}` {
		t.Errorf("body = %q, want the first script that parses", body)
	}
}

func TestSniffJSON_ArrayPayloadRejected(t *testing.T) {
	page := `<html><script type="application/json">[1, 2, 3]</script></html>`
	if _, ok := SniffJSON([]byte(page)); ok {
		t.Error("top-level arrays are not profile payloads")
	}
}

func TestSniffJSON_NoScripts(t *testing.T) {
	if _, ok := SniffJSON([]byte(`<html><body>plain page</body></html>`)); ok {
		t.Error("want miss for a page with no scripts")
	}
}
