// Package steam is the client for the Steam Web API's GetOwnedGames
// endpoint.
//
// Each call performs one live GET request for the given Steam id, with
// per-game metadata included, and parses the JSON response into a typed
// list of owned games. There is no caching and no pagination handling; a
// single response page is assumed.
//
// Failures are classified through the errs taxonomy: a missing API key is a
// config error raised before any network I/O, connection or non-200
// failures are transport errors, and malformed responses are parse errors.
// Retry policy, if any, belongs to the caller.
package steam
