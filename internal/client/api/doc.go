// Package api is the HTTP access layer for the admin console.
//
// Endpoints follow the collection convention of the backend:
//
//	GET    /{resource}        list
//	POST   /{resource}        create
//	PUT    /{resource}/{id}   update
//	DELETE /{resource}/{id}   delete
//	POST   /user/login        session establishment
//	POST   /user/register     account creation
//
// Every call is described first by RequestOptions, a pure helper producing
// {method, headers, serialized body}, and then executed by the Client.
// Outcomes map onto sentinel errors matched with errors.Is:
// common.ErrUnavailable (transport), common.ErrUnauthorized (401/403),
// common.ErrNotFound (404). List bodies may be a bare array or an object
// with a "data" array; both are accepted, anything else is an empty list.
package api
