package entities

// SdkVersionSet is the Android SDK level triple used by a build
type SdkVersionSet struct {
	CompileSdk int
	MinSdk     int
	TargetSdk  int
}

// AppVersion is the version code/name pair of the application
type AppVersion struct {
	Code int
	Name string
}

// PluginValues are the values exposed by the Flutter Gradle plugin.
// Descriptor attributes bound to the plugin are resolved from these.
type PluginValues struct {
	Sdk            SdkVersionSet
	Version        AppVersion
	NdkVersion     string
	FlutterSdkPath string
	Sources        map[string]string // value name -> where it came from
}
