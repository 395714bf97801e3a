package main

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/flimzy/diff"
	"github.com/flimzy/testy"

	"github.com/FlashbackSRS/flipdeck/config"
	"github.com/FlashbackSRS/flipdeck/deck"
)

func testHandler(t *testing.T) http.Handler {
	t.Helper()
	d := deck.New([]deck.Card{
		{Question: "Two plus two?", Answer: "4", Explanation: "<b>math</b>"},
		{Question: "<script>?", Answer: "no"},
	})
	conf := config.New(map[string]string{"locale": "de-DE", "enter.duration": "400ms"})
	www := http.FS(fstest.MapFS{
		"style.css":    {Data: []byte("body{}")},
		"webclient.js": {Data: []byte("console.log(1)")},
	})
	h, err := newHandler(d, conf, www)
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func get(t *testing.T, h http.Handler, path string) (*http.Response, string) {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
	res := w.Result()
	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}
	return res, string(body)
}

func TestIndex(t *testing.T) {
	res, body := get(t, testHandler(t), "/")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("Unexpected status %d", res.StatusCode)
	}
	for _, want := range []string{
		`<html lang="de-DE">`,
		`<script type="application/json" id="deck">`,
		`"question":"Two plus two?"`,
		`"enter.duration":"400ms"`,
		`<script src="webclient.js">`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Body lacks %s", want)
		}
	}
	if strings.Contains(body, "<script>?") {
		t.Error("Card text was not escaped")
	}
}

func TestDeckJSON(t *testing.T) {
	res, body := get(t, testHandler(t), "/deck.json")
	if ct := res.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Unexpected content type %s", ct)
	}
	expected := `[
		{"question":"Two plus two?","answer":"4","explanation":"<b>math</b>"},
		{"question":"<script>?","answer":"no","explanation":""}
	]`
	if d := diff.JSON([]byte(expected), []byte(body)); d != nil {
		t.Error(d)
	}
}

func TestStatic(t *testing.T) {
	h := testHandler(t)
	res, body := get(t, h, "/style.css")
	if res.StatusCode != http.StatusOK || body != "body{}" {
		t.Errorf("Unexpected response %d %q", res.StatusCode, body)
	}
	if res, _ := get(t, h, "/missing.js"); res.StatusCode != http.StatusNotFound {
		t.Errorf("Unexpected status %d", res.StatusCode)
	}
	if res, _ := get(t, h, "/index.html"); res.StatusCode != http.StatusMovedPermanently {
		t.Errorf("Unexpected status %d", res.StatusCode)
	}
}

func TestInvalidConfig(t *testing.T) {
	_, err := newHandler(deck.New(nil), config.New(map[string]string{"bounce.duration": "x"}), http.Dir("."))
	testy.ErrorRE(t, "^invalid config: 1 error occurred", err)
}

func TestRedirectHandler(t *testing.T) {
	res, _ := get(t, RedirectHandler("https://example.com/"), "/foo")
	if res.StatusCode != http.StatusFound {
		t.Errorf("Unexpected status %d", res.StatusCode)
	}
	if loc := res.Header.Get("Location"); loc != "https://example.com/" {
		t.Errorf("Unexpected location %s", loc)
	}
}
