// Package cli provides the interactive AutoHub terminal client.
//
// It wires configuration, the local store, the backend API client, the
// session store, and an interactive REPL whose commands correspond to the
// marketplace screens. Typical flow: restore the session from the persisted
// token, then browse listings, open a car, sell a car, or manage the
// profile.
//
// Key screens:
//   - login / signup / verify — account access
//   - browse — the listing screen with search and price filtering
//   - show — a single car with an image carousel
//   - sell — the listing form with image uploads (authenticated)
//   - profile — editable profile, picture upload, own listings (authenticated)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
