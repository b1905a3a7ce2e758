package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ochairo/droidspec/internal/domain-adapters/gateways"
	"github.com/ochairo/droidspec/internal/domain/services"
	"github.com/ochairo/droidspec/internal/external-adapters/hcl"
)

// newProject lays out a Flutter app with android/app holding the default
// descriptor and returns the module directory
func newProject(t *testing.T, signed bool) string {
	t.Helper()
	root := t.TempDir()
	module := filepath.Join(root, "android", "app")
	require.NoError(t, os.MkdirAll(module, 0o755))

	files := map[string]string{
		filepath.Join(root, "pubspec.yaml"):                "name: speed7_delivery\nversion: 1.4.2+17\n",
		filepath.Join(root, "android", "local.properties"): "flutter.sdk=/opt/flutter\nflutter.minSdkVersion=23\n",
		filepath.Join(module, "proguard-rules.pro"):        "-keep class io.flutter.** { *; }\n",
		filepath.Join(module, hcl.DefaultFileName):         string(hcl.DefaultDescriptor()),
	}
	if signed {
		files[filepath.Join(root, "android", "key.properties")] = "storePassword=st0re\nkeyPassword=k3y\nkeyAlias=upload\nstoreFile=upload-keystore.jks\n"
	}
	for p, content := range files {
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	}
	return module
}

// runCLI runs droidspec in-process with an isolated config file
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	args = append([]string{"--quiet", "--config", filepath.Join(t.TempDir(), "config.yml")}, args...)
	err := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), err
}

func TestCLI_Version(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	if !strings.HasPrefix(out, "droidspec ") {
		t.Errorf("version output = %q", out)
	}
}

func TestCLI_Plan(t *testing.T) {
	module := newProject(t, true)

	out, err := runCLI(t, "plan", module)
	require.NoError(t, err)

	var doc gateways.PlanDocument
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	if doc.ApplicationID != "com.speed7delivery.app" {
		t.Errorf("ApplicationID = %q", doc.ApplicationID)
	}
	if doc.MinSdk != 23 || doc.CompileSdk != gateways.DefaultCompileSdk {
		t.Errorf("sdk = compile %d min %d", doc.CompileSdk, doc.MinSdk)
	}
	if doc.VersionCode != 17 || doc.VersionName != "1.4.2" {
		t.Errorf("version = %d %q", doc.VersionCode, doc.VersionName)
	}
	if strings.Contains(out, "st0re") || strings.Contains(out, "k3y") {
		t.Error("plan output leaks a password")
	}
	require.Len(t, doc.Signing, 1)
	if want := filepath.Join(module, "upload-keystore.jks"); doc.Signing[0].StoreFile != want {
		t.Errorf("StoreFile = %q, want %q", doc.Signing[0].StoreFile, want)
	}

	names := make(map[string]int)
	for _, a := range doc.Artifacts {
		names[a.FileName] = a.VersionCode
	}
	for name, code := range map[string]int{
		"app-armeabi-v7a-release.apk": 1017,
		"app-arm64-v8a-release.apk":   2017,
		"app-x86_64-release.apk":      4017,
		"app-universal-release.apk":   17,
		"app-universal-debug.apk":     17,
	} {
		if names[name] != code {
			t.Errorf("artifact %s version code = %d, want %d", name, names[name], code)
		}
	}
	if _, ok := names["app-x86-release.apk"]; ok {
		t.Error("x86 is not included after reset")
	}
}

func TestCLI_Plan_Unsigned(t *testing.T) {
	module := newProject(t, false)

	out, err := runCLI(t, "plan", module)
	require.NoError(t, err)
	if !strings.Contains(out, "release build is unsigned") {
		t.Errorf("plan should carry the unsigned warning: %s", out)
	}

	_, err = runCLI(t, "plan", "--require-signing", module)
	if !errors.Is(err, services.ErrReleaseUnsigned) {
		t.Errorf("plan --require-signing error = %v, want ErrReleaseUnsigned", err)
	}
}

func TestCLI_PlanWriteAndVerify(t *testing.T) {
	module := newProject(t, true)
	outDir := filepath.Join(t.TempDir(), "dist")

	out, err := runCLI(t, "plan", "--write", "--output", outDir, module)
	require.NoError(t, err)
	if !strings.Contains(out, "Configuration resolved!") {
		t.Errorf("plan --write output = %q", out)
	}

	planPath := filepath.Join(outDir, gateways.PlanFileName)
	out, err = runCLI(t, "verify", planPath)
	require.NoError(t, err)
	if !strings.Contains(out, "Checksum verified") {
		t.Errorf("verify output = %q", out)
	}

	require.NoError(t, os.WriteFile(planPath, []byte("{}\n"), 0o600))
	if _, err := runCLI(t, "verify", planPath); err == nil {
		t.Error("verify should fail for a modified plan")
	}
}

func TestCLI_Show(t *testing.T) {
	module := newProject(t, true)

	out, err := runCLI(t, "show", module)
	require.NoError(t, err)

	for _, want := range []string{"min_sdk", "= 23", `version_name`, `"1.4.2"`, "proguard-rules.pro"} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "flutter.minSdkVersion") || strings.Contains(out, "flutter.versionName") {
		t.Errorf("show output still references the plugin object:\n%s", out)
	}
}

func TestCLI_Validate(t *testing.T) {
	module := newProject(t, false)

	out, err := runCLI(t, "validate", module)
	require.NoError(t, err)
	if !strings.Contains(out, "warning: release build is unsigned") || !strings.Contains(out, ": ok") {
		t.Errorf("validate output = %q", out)
	}

	if _, err := runCLI(t, "validate", "--strict", module); err == nil {
		t.Error("validate --strict should fail on warnings")
	}
}

func TestCLI_Validate_LiteralPluginValue(t *testing.T) {
	module := newProject(t, true)
	desc := strings.Replace(string(hcl.DefaultDescriptor()), "flutter.minSdkVersion", "21", 1)
	require.NoError(t, os.WriteFile(filepath.Join(module, hcl.DefaultFileName), []byte(desc), 0o600))

	_, err := runCLI(t, "validate", module)
	if !errors.Is(err, hcl.ErrLiteralPluginValue) {
		t.Errorf("validate error = %v, want ErrLiteralPluginValue", err)
	}
}

func TestCLI_Builtin(t *testing.T) {
	module := newProject(t, true)
	require.NoError(t, os.Remove(filepath.Join(module, hcl.DefaultFileName)))

	if _, err := runCLI(t, "validate", module); err == nil {
		t.Error("validate without a descriptor should fail")
	}
	if _, err := runCLI(t, "--builtin", "validate", module); err != nil {
		t.Errorf("validate --builtin error = %v", err)
	}
}

func TestCLI_CheckOutputs(t *testing.T) {
	module := newProject(t, true)
	apkDir := filepath.Join(module, gateways.ApkOutputDir, "release")
	require.NoError(t, os.MkdirAll(apkDir, 0o755))

	for _, name := range []string{"app-armeabi-v7a-release.apk", "app-arm64-v8a-release.apk"} {
		require.NoError(t, os.WriteFile(filepath.Join(apkDir, name), []byte("apk"), 0o600))
	}

	_, err := runCLI(t, "check-outputs", "release", module)
	if err == nil || !strings.Contains(err.Error(), "app-x86_64-release.apk") {
		t.Errorf("check-outputs error = %v, want missing x86_64 package", err)
	}

	for _, name := range []string{"app-x86_64-release.apk", "app-universal-release.apk"} {
		require.NoError(t, os.WriteFile(filepath.Join(apkDir, name), []byte("apk"), 0o600))
	}

	out, err := runCLI(t, "check-outputs", "release", module)
	require.NoError(t, err)
	if !strings.Contains(out, "All 4 release packages present") {
		t.Errorf("check-outputs output = %q", out)
	}
}

func TestCLI_ConfigFile(t *testing.T) {
	module := newProject(t, false)
	cfg := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(cfg, []byte("require_signing: true\n"), 0o600))

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"--quiet", "--config", cfg, "validate", module}, &stdout, &stderr)
	if !errors.Is(err, services.ErrReleaseUnsigned) {
		t.Errorf("validate with require_signing config error = %v, want ErrReleaseUnsigned", err)
	}
}
