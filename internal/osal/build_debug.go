//go:build debug

package osal

// DebugBuild reports whether this binary was built with the debug tag.
const DebugBuild = true

const debugBuild = true
