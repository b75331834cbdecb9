package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"print"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("print: %v", err)
	}

	got := out.String()
	for _, name := range []string{"Иван Петрович", "Мария Ивановна", "Пётр Иванович", "Дмитрий Александрович"} {
		if !strings.Contains(got, name) {
			t.Errorf("output missing %q", name)
		}
	}
	if strings.Contains(got, "┏") {
		t.Error("print should not mark a cursor card")
	}
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FAMILYTREE_PORT", "9000")
	t.Setenv("FAMILYTREE_LOG_LEVEL", "warn")

	port, logLevel = "7070", "debug"
	t.Cleanup(func() { port, logLevel = "", "" })

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Port != "7070" {
		t.Errorf("Port = %q, want 7070", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadConfigRejectsBadPort(t *testing.T) {
	t.Chdir(t.TempDir())
	port = "99999"
	t.Cleanup(func() { port = "" })

	if _, err := loadConfig(); err == nil {
		t.Fatal("expected error for out-of-range port")
	}
}
