package fr

// Precedence helpers: a CLI value wins when set, then the local config file,
// then the global one.

func pickString(flag string, local, global *string) string {
	if flag != "" {
		return flag
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return ""
}

func pickBool(flag bool, local, global *bool) bool {
	if flag {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}

func pickInt(flag int, local, global *int) int {
	if flag != 0 {
		return flag
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return 0
}
