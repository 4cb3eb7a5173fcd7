package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/MoulikGL/basiccrudapp-admin/internal/client/router"
)

// Run starts the console's read–eval–print loop.
//
// The prompt shows the current identity and accepts commands:
//
//	Not logged in:
//	  - help            show available commands
//	  - login           authenticate
//	  - signup          create an account
//	  - exit | quit     leave the program
//
//	Logged in:
//	  - help            show available commands
//	  - users           open the user management screen
//	  - products        open the product management screen
//	  - logout          log out
//	  - exit | quit     leave the program
//
// Every screen change passes through the route guard, so asking for a
// protected screen while logged out lands on the login screen, and vice
// versa.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Admin console (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "admin %s> ", a.status())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, "Available commands: users, products, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: login, signup, exit")
			}

		case "login", "signup", "users", "products":
			a.navigate(ctx, router.Parse(cmd))

		case "open":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: open <screen>")
				continue
			}
			a.navigate(ctx, router.Parse(args[0]))

		case "logout":
			a.auth.Logout()
			fmt.Fprintln(a.out, "Logged out")

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

// navigate resolves the requested screen through the route guard and
// renders whatever the guard decided.
func (a *App) navigate(ctx context.Context, requested router.Screen) {
	effective := router.Resolve(a.isLoggedIn(), requested)
	if effective != requested {
		a.log.Debug(ctx, "redirected by route guard", "requested", requested, "effective", effective)
	}

	switch effective {
	case router.ScreenLogin:
		_ = a.Login(ctx)
	case router.ScreenSignup:
		_ = a.Signup(ctx)
	case router.ScreenUsers:
		runResource(ctx, a, a.users)
	case router.ScreenProducts:
		runResource(ctx, a, a.products)
	default:
		a.notFound(ctx)
	}
}

// notFound renders the catch-all screen. Its single action returns to the
// default route, which the guard may still rewrite to login.
func (a *App) notFound(ctx context.Context) {
	fmt.Fprintln(a.out, "Page not found.")
	answer, err := GetSimpleText(a.reader, "Press Enter to return home (or type 'stay')", a.out)
	if err != nil || answer == "stay" {
		return
	}
	a.navigate(ctx, router.DefaultAuthenticated)
}
