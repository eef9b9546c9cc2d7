//go:build windows

package distribute

// lineTerminator ends every line written to a text artifact.
const lineTerminator = "\r\n"
