package color

// Role names the part of the widget a device color is resolved for.
type Role int

const (
	RoleText Role = iota
	RoleBackground
)

const (
	deviceTextLight       = "#000000"
	deviceTextDark        = "#FFFFFF"
	deviceBackgroundLight = "#FFFFFF"
	deviceBackgroundDark  = "#121212"
)

// ResolveDevice returns the host theme color for role.
func ResolveDevice(role Role, dark bool) string {
	switch role {
	case RoleBackground:
		if dark {
			return deviceBackgroundDark
		}
		return deviceBackgroundLight
	default:
		if dark {
			return deviceTextDark
		}
		return deviceTextLight
	}
}

// Resolve returns value unless it is the device sentinel, in which case the
// host theme color for role is returned.
func Resolve(value string, role Role, dark bool) string {
	if value == DeviceSentinel {
		return ResolveDevice(role, dark)
	}
	return value
}
