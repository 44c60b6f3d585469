// Package easyverein provides the public types and interfaces for the
// easyVerein membership-management API client.
//
// The package contains the client configuration and interface definitions,
// the error taxonomy, wire types shared by all resources (list envelope,
// dates, references), filter construction, pagination helpers and an
// optional response cache. The concrete client implementation lives in
// internal/client and is constructed through pkg/evclient:
//
//	client, err := evclient.New(&easyverein.Config{
//		APIKey: os.Getenv("EV_API_KEY"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	members, total, err := client.Members().List(ctx, nil, nil)
//
// # Resources
//
// Every resource client exposes the same CRUD surface: List (one page),
// ListAll (transparent pagination), GetByID, Create, Update and Delete.
// Resources that the API soft-deletes additionally expose ListDeleted and
// Purge against the wastebasket namespace.
//
// # Partial updates
//
// Create and update payloads use pointer fields. A nil field is never
// serialized, which gives PATCH its partial-update semantics: only the
// fields you explicitly set are sent to the API. The same rule applies to
// filters; an unset predicate never appears in the query string.
//
// # Errors
//
// All failures are typed: NotFoundError (404), RateLimitError (429 with
// retries disabled or exhausted), APIError (any other unexpected status)
// and PreconditionError (invalid arguments, detected before any network
// call). Match them with errors.As or the IsNotFound/IsRateLimited
// helpers.
package easyverein
