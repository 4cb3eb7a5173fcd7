// Package cli implements the terminal shell of the admin console.
//
// The shell is a plain read–eval–print loop. The top level handles
// navigation (login, signup, users, products) through the route guard;
// each resource screen runs its own sub-loop around the shared table
// controller. All interactive input goes through the helpers in input.go,
// which keep test seams for the terminal-only bits.
package cli
