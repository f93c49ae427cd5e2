package cmd

import (
	"bytes"
	"fmt"
	"runtime"
	"strings"
	"testing"
)

func TestVersionCommandOutput(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)

	got := out.String()
	if !strings.HasPrefix(got, "mathquest ") {
		t.Fatalf("output %q does not start with the binary name", got)
	}
	platform := fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
	if !strings.Contains(got, platform) {
		t.Fatalf("output %q does not report platform %s", got, platform)
	}
}

func TestResolvedVersionPrefersLdflags(t *testing.T) {
	orig := version
	defer func() { version = orig }()

	version = "v1.2.3"
	if got := resolvedVersion(); got != "v1.2.3" {
		t.Fatalf("resolvedVersion() = %q, want v1.2.3", got)
	}
}
