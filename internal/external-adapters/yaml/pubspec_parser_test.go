package yaml

import (
	"testing"
)

func TestPubspecParser_Parse_Valid(t *testing.T) {
	parser := NewPubspecParser()
	yamlData := []byte(`name: speed7_delivery
description: Delivery app
version: 1.4.2+17
environment:
  sdk: ">=3.3.0 <4.0.0"
flutter:
  uses-material-design: true
  deferred-components:
    - name: tracking
      libraries:
        - package:speed7_delivery/tracking.dart
`)

	spec, err := parser.Parse(yamlData)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if spec.Name != "speed7_delivery" {
		t.Errorf("Name = %v, want speed7_delivery", spec.Name)
	}
	if !spec.HasVersion || spec.VersionName != "1.4.2" || spec.VersionCode != 17 {
		t.Errorf("version = %q/%d (has=%v), want 1.4.2/17", spec.VersionName, spec.VersionCode, spec.HasVersion)
	}
	if len(spec.DeferredComponents) != 1 || spec.DeferredComponents[0] != "tracking" {
		t.Errorf("DeferredComponents = %v", spec.DeferredComponents)
	}
}

func TestPubspecParser_Parse_NoVersion(t *testing.T) {
	spec, err := NewPubspecParser().Parse([]byte("name: app\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if spec.HasVersion {
		t.Error("HasVersion should be false")
	}
}

func TestPubspecParser_Parse_MissingName(t *testing.T) {
	_, err := NewPubspecParser().Parse([]byte("version: 1.0.0+1\n"))
	if err == nil || err.Error() != "pubspec must have a name" {
		t.Errorf("Parse() error = %v, want 'pubspec must have a name'", err)
	}
}

func TestPubspecParser_Parse_InvalidYAML(t *testing.T) {
	_, err := NewPubspecParser().Parse([]byte("name: test\n  invalid: [broken yaml\n"))
	if err == nil {
		t.Error("Parse() should return error for invalid YAML")
	}
}

func TestSplitVersion(t *testing.T) {
	tests := []struct {
		in       string
		wantName string
		wantCode int
		wantErr  bool
	}{
		{"1.0.0+1", "1.0.0", 1, false},
		{"2.3.4", "2.3.4", 0, false},
		{"1.0.0-beta.2+40", "1.0.0-beta.2", 40, false},
		{"1.0.0+abc", "", 0, true},
		{"+5", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			name, code, err := SplitVersion(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SplitVersion(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if name != tt.wantName || code != tt.wantCode {
				t.Errorf("SplitVersion(%q) = %q, %d; want %q, %d", tt.in, name, code, tt.wantName, tt.wantCode)
			}
		})
	}
}

func TestPubspecParser_ParseFile_NotFound(t *testing.T) {
	_, err := NewPubspecParser().ParseFile("/nonexistent/pubspec.yaml")
	if err == nil {
		t.Error("ParseFile() should return error for nonexistent file")
	}
}
