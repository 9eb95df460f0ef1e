package tint

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/708u/tint/internal/testutil"
)

func TestDetector_Enabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		mode            Mode
		console         Console
		hasConsole      bool
		osName          string
		want            bool
		wantConsoleCall bool
	}{
		{
			name:       "always_ignores_probes",
			mode:       ModeAlways,
			console:    ConsoleAbsent,
			hasConsole: false,
			osName:     "Windows 10",
			want:       true,
		},
		{
			name:       "never_ignores_probes",
			mode:       ModeNever,
			console:    ConsolePresent,
			hasConsole: true,
			osName:     "Linux",
			want:       false,
		},
		{
			name:       "override_absent_skips_probe",
			mode:       ModeDetect,
			console:    ConsoleAbsent,
			hasConsole: true,
			osName:     "Linux",
			want:       false,
		},
		{
			name:            "no_console",
			mode:            ModeDetect,
			console:         ConsoleUnset,
			hasConsole:      false,
			osName:          "Linux",
			want:            false,
			wantConsoleCall: true,
		},
		{
			name:            "console_on_windows",
			mode:            ModeDetect,
			console:         ConsoleUnset,
			hasConsole:      true,
			osName:          "Windows 10",
			want:            false,
			wantConsoleCall: true,
		},
		{
			name:            "console_on_linux",
			mode:            ModeDetect,
			console:         ConsoleUnset,
			hasConsole:      true,
			osName:          "Linux",
			want:            true,
			wantConsoleCall: true,
		},
		{
			name:            "os_match_is_case_insensitive",
			mode:            ModeDetect,
			console:         ConsoleUnset,
			hasConsole:      true,
			osName:          "CYGWIN_NT-10.0",
			want:            false,
			wantConsoleCall: true,
		},
		{
			name:       "override_present_skips_console_probe",
			mode:       ModeDetect,
			console:    ConsolePresent,
			hasConsole: false,
			osName:     "Mac OS X",
			want:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := testutil.NewMockEnvironment(tt.hasConsole, tt.osName)
			d := NewDetector(env, nil)

			if got := d.Enabled(tt.mode, tt.console); got != tt.want {
				t.Errorf("Enabled() = %v, want %v", got, tt.want)
			}

			calls := env.ConsoleCalls.Load()
			if tt.wantConsoleCall && calls != 1 {
				t.Errorf("HasConsole called %d times, want 1", calls)
			}
			if !tt.wantConsoleCall && calls != 0 {
				t.Errorf("HasConsole called %d times, want 0", calls)
			}
		})
	}
}

func TestDetector_Memoizes(t *testing.T) {
	t.Parallel()

	env := testutil.NewMockEnvironment(true, "Linux")
	d := NewDetector(env, nil)

	for range 3 {
		if !d.Enabled(ModeDetect, ConsoleUnset) {
			t.Fatal("Enabled() = false, want true")
		}
	}
	if calls := env.ConsoleCalls.Load(); calls != 1 {
		t.Errorf("HasConsole called %d times, want 1", calls)
	}
	if calls := env.OSNameCalls.Load(); calls != 1 {
		t.Errorf("OperatingSystemName called %d times, want 1", calls)
	}

	// Non-detect modes neither probe nor disturb the memo
	d.Enabled(ModeNever, ConsoleUnset)
	d.Enabled(ModeDetect, ConsoleUnset)
	if calls := env.ConsoleCalls.Load(); calls != 1 {
		t.Errorf("HasConsole called %d times after ModeNever, want 1", calls)
	}
}

func TestDetector_OverrideChangeRecomputes(t *testing.T) {
	t.Parallel()

	env := testutil.NewMockEnvironment(true, "Linux")
	d := NewDetector(env, nil)

	if !d.Enabled(ModeDetect, ConsoleUnset) {
		t.Fatal("Enabled(unset) = false, want true")
	}
	if d.Enabled(ModeDetect, ConsoleAbsent) {
		t.Error("Enabled(absent) = true, want false")
	}
	if !d.Enabled(ModeDetect, ConsoleUnset) {
		t.Error("Enabled(unset) = false after override change, want true")
	}
	if calls := env.ConsoleCalls.Load(); calls != 2 {
		t.Errorf("HasConsole called %d times, want 2", calls)
	}
}

func TestDetector_Reset(t *testing.T) {
	t.Parallel()

	console := true
	env := &testutil.MockEnvironment{
		HasConsoleFunc:          func() bool { return console },
		OperatingSystemNameFunc: func() string { return "Linux" },
	}
	d := NewDetector(env, nil)

	if !d.Enabled(ModeDetect, ConsoleUnset) {
		t.Fatal("Enabled() = false, want true")
	}

	console = false
	if !d.Enabled(ModeDetect, ConsoleUnset) {
		t.Error("Enabled() should return the memoized true before Reset")
	}

	d.Reset()
	if d.Enabled(ModeDetect, ConsoleUnset) {
		t.Error("Enabled() = true after Reset, want false")
	}
}

func TestDetector_ProbeFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  *testutil.MockEnvironment
	}{
		{
			name: "console_probe_panics",
			env: &testutil.MockEnvironment{
				HasConsoleFunc:          func() bool { panic("no tty device") },
				OperatingSystemNameFunc: func() string { return "Linux" },
			},
		},
		{
			name: "os_probe_panics",
			env: &testutil.MockEnvironment{
				HasConsoleFunc:          func() bool { return true },
				OperatingSystemNameFunc: func() string { panic("uname failed") },
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log := slog.New(NewCLIHandler(&buf, slog.LevelDebug, nil))
			d := NewDetector(tt.env, log)

			if d.Enabled(ModeDetect, ConsoleUnset) {
				t.Error("Enabled() = true, want false on probe failure")
			}
			if !strings.Contains(buf.String(), "detect: probe failed") {
				t.Errorf("log %q should record the probe failure", buf.String())
			}

			// Failure is memoized like any other result
			d.Enabled(ModeDetect, ConsoleUnset)
			if calls := tt.env.ConsoleCalls.Load(); calls != 1 {
				t.Errorf("HasConsole called %d times, want 1", calls)
			}
		})
	}
}

func TestDetector_NilEnvironment(t *testing.T) {
	t.Parallel()

	d := NewDetector(nil, nil)
	if d.Enabled(ModeDetect, ConsoleUnset) {
		t.Error("Enabled() = true with nil environment, want false")
	}
}

func TestDetector_Concurrent(t *testing.T) {
	t.Parallel()

	env := testutil.NewMockEnvironment(true, "Linux")
	d := NewDetector(env, nil)

	var wg sync.WaitGroup
	for range 16 {
		wg.Go(func() {
			if !d.Enabled(ModeDetect, ConsoleUnset) {
				t.Error("Enabled() = false, want true")
			}
		})
	}
	wg.Wait()

	if calls := env.ConsoleCalls.Load(); calls != 1 {
		t.Errorf("HasConsole called %d times, want 1", calls)
	}
}
