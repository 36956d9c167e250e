package version

// AppVersion is overridden at build time via
// -ldflags "-X nativecheck/internal/version.AppVersion=x.y.z".
var AppVersion = "0.1.0-dev"
