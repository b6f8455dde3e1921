package entity

import "strings"

// Platform selects how focus changes are delivered to the host views.
type Platform string

const (
	// PlatformDirect issues focus and blur calls straight to the host view.
	PlatformDirect Platform = "direct"
	// PlatformCommand dispatches symbolic commands addressed to the host view.
	PlatformCommand Platform = "command"
	// PlatformNone records focus state without notifying any host.
	PlatformNone Platform = "none"
)

// ParsePlatform normalises s. Unrecognised values map to PlatformNone.
func ParsePlatform(s string) Platform {
	switch p := Platform(strings.ToLower(strings.TrimSpace(s))); p {
	case PlatformDirect, PlatformCommand:
		return p
	default:
		return PlatformNone
	}
}

func (p Platform) String() string {
	return string(p)
}

// HostCommand is a symbolic command code understood by command-based hosts.
type HostCommand string

const (
	HostCommandFocusTextInput HostCommand = "focusTextInput"
	HostCommandBlurTextInput  HostCommand = "blurTextInput"
)
