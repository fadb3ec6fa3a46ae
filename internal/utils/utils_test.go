package utils

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSetLogLevel(t *testing.T) {
	defer Log.SetLevel(logrus.InfoLevel)

	cases := map[string]logrus.Level{
		"debug": logrus.DebugLevel,
		"INFO":  logrus.InfoLevel,
		"warn":  logrus.WarnLevel,
		"error": logrus.ErrorLevel,
	}
	for in, want := range cases {
		if err := SetLogLevel(in); err != nil {
			t.Fatalf("SetLogLevel(%q): %v", in, err)
		}
		if Log.GetLevel() != want {
			t.Errorf("SetLogLevel(%q) level = %v, want %v", in, Log.GetLevel(), want)
		}
	}

	if err := SetLogLevel("verbose"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestCapitalize(t *testing.T) {
	cases := map[string]string{
		"":                        "",
		"egg, WHOLE, raw":         "Egg, whole, raw",
		"Daily nutrition targets": "Daily nutrition targets",
		"élan":                    "Élan",
	}
	for in, want := range cases {
		if got := Capitalize(in); got != want {
			t.Errorf("Capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}
