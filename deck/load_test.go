package deck

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/flimzy/testy"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cards.json")
	if err := ioutil.WriteFile(path, []byte(`[{"frage":"1?","antwort":"1"}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	d, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if c, _ := d.Card(0); c.Question != "1?" {
		t.Errorf("Unexpected card: %+v", c)
	}

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	testy.ErrorRE(t, "^open deck: ", err)

	bad := filepath.Join(dir, "bad.json")
	if err := ioutil.WriteFile(bad, []byte(`[{}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = LoadFile(bad)
	testy.ErrorRE(t, `^load .*bad\.json: invalid deck: `, err)
}
