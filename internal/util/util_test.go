package util_test

import (
	"testing"

	"github.com/blackwell-systems/comiccards/internal/util"
	"github.com/fatih/color"
)

func TestMD5Hex(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", "d41d8cd98f00b204e9800998ecf8427e"},
		{"abc", "900150983cd24fb0d6963f7d28e17f72"},
		{"The quick brown fox jumps over the lazy dog", "9e107d9d372bb6826bd81d3542a419d6"},
	}
	for _, c := range cases {
		if got := util.MD5Hex(c.in); got != c.want {
			t.Errorf("MD5Hex(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestInitColor_NoColorFlag(t *testing.T) {
	prev := color.NoColor
	defer func() { color.NoColor = prev }()

	color.NoColor = false
	util.InitColor(true)
	if !color.NoColor {
		t.Error("InitColor(true) should disable color")
	}
}
