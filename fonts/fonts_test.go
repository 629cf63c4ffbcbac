package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults failed: %v", err)
	}
	for _, name := range []FontName{HUD, Title} {
		if name.Get() == nil {
			t.Errorf("font %s is nil", name)
		}
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("not a font"), 12); err == nil {
		t.Error("expected parse error")
	}
	if err := LoadFontWithSize("regular", goregular.TTF, 12); err != nil {
		t.Errorf("LoadFontWithSize failed: %v", err)
	}
}

func TestGetMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown font")
		}
	}()
	FontName("missing").Get()
}
