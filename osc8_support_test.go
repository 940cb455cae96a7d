package mdtty

import "testing"

func TestDetectOSC8Support(t *testing.T) {
	clearEnv := func(t *testing.T) {
		for _, key := range []string{"OSC8", "DOMTERM", "WT_SESSION", "TERM_PROGRAM", "TERM", "VTE_VERSION"} {
			t.Setenv(key, "")
		}
	}

	t.Run("bare environment", func(t *testing.T) {
		clearEnv(t)
		if DetectOSC8Support() {
			t.Error("support claimed with no terminal hints")
		}
	})
	t.Run("iterm", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("TERM_PROGRAM", "iTerm.app")
		if !DetectOSC8Support() {
			t.Error("iTerm not detected")
		}
	})
	t.Run("kitty", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("TERM", "xterm-kitty")
		if !DetectOSC8Support() {
			t.Error("kitty not detected")
		}
	})
	t.Run("vte version gate", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("VTE_VERSION", "5200")
		if !DetectOSC8Support() {
			t.Error("modern VTE not detected")
		}
		t.Setenv("VTE_VERSION", "4000")
		if DetectOSC8Support() {
			t.Error("old VTE accepted")
		}
	})
	t.Run("explicit opt out wins", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("TERM_PROGRAM", "WezTerm")
		t.Setenv("OSC8", "0")
		if DetectOSC8Support() {
			t.Error("OSC8=0 ignored")
		}
	})
}
