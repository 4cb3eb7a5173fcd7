// Package table implements the generic paginated CRUD controller shared by
// both resource screens.
//
// One Controller instance owns the view state of one collection: the items
// in server order, the current page, at most one open edit draft and at
// most one open create draft. Both screens instantiate the same controller
// with their own Descriptor (field list, required flags, ownership rule)
// instead of duplicating the lifecycle per resource.
//
// The controller never trusts its own mutations: every successful save,
// create or delete is followed by a reload, and a failed mutation leaves
// local state untouched. Failures are terminal per attempt: there are no
// automatic retries, each failure surfaces as exactly one notification.
package table
