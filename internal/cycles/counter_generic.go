//go:build purego || !(amd64 || arm64)

package cycles

var defaultCounter Counter = NewMonotonic()
