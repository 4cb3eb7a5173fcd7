// Package session owns the authenticated identity and its bearer token.
//
// The Store is created once per process and injected into every consumer:
// screens read it to decide which actions are enabled, the API client reads
// it for the Authorization header. Durability is a single JSON file entry;
// anything unreadable there is treated as "not logged in" rather than an
// error, mirroring how a browser client treats local storage.
package session
