package main

// backendAvailable reports whether a fyne window can be opened. Desktop
// platforms always have a windowing system; elsewhere an X11 or Wayland
// display must be advertised in the environment.
func backendAvailable(goos string, getenv func(string) string) bool {
	switch goos {
	case "darwin", "windows", "ios", "android":
		return true
	}
	return getenv("DISPLAY") != "" || getenv("WAYLAND_DISPLAY") != ""
}
