// Package router decides which screen a given session state may view.
package router

// Screen identifies one of the console's screens.
type Screen string

const (
	ScreenLogin    Screen = "login"
	ScreenSignup   Screen = "signup"
	ScreenUsers    Screen = "users"
	ScreenProducts Screen = "products"
	ScreenNotFound Screen = "notfound"
)

// DefaultAuthenticated is where authenticated users land by default, and
// where the not-found screen's single action leads back to.
const DefaultAuthenticated = ScreenProducts

// Parse maps a requested path/command onto a known screen. Anything
// unrecognized is the not-found screen.
func Parse(name string) Screen {
	switch Screen(name) {
	case ScreenLogin, ScreenSignup, ScreenUsers, ScreenProducts:
		return Screen(name)
	}
	return ScreenNotFound
}

// Resolve applies the guard rules and returns the screen that actually
// renders:
//
//   - anonymous visitors asking for an authenticated-only screen are sent
//     to login;
//   - authenticated users asking for an anonymous-only screen (login,
//     signup) are sent to the default authenticated screen;
//   - everything else passes through, unknown screens stay not-found.
func Resolve(loggedIn bool, requested Screen) Screen {
	switch requested {
	case ScreenLogin, ScreenSignup:
		if loggedIn {
			return DefaultAuthenticated
		}
		return requested
	case ScreenUsers, ScreenProducts:
		if !loggedIn {
			return ScreenLogin
		}
		return requested
	default:
		return ScreenNotFound
	}
}
