// Package handlers implements the HTTP API of the record manager.
//
// Handlers translate requests into models.Command values, run them through
// services.Manager and answer with the resulting view. They hold no state of
// their own: every response is the full table state after the request.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                     HTTP Request (Gin)                          │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Handler (this package)                     │
//	│  - Body binding and parameter parsing                           │
//	│  - Request → models.Command                                     │
//	│  - Error mapping to HTTP status codes                           │
//	│  - RenderModel → v1.View                                        │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                 services.Manager (serialized)                   │
//	└─────────────────────────────────────────────────────────────────┘
//
// # API Endpoints
//
// All routes are mounted under /api/v1.
//
// View (view.go):
//
//	┌────────┬────────────────┬─────────────────────────────────────────┐
//	│ Method │ Endpoint       │ Description                             │
//	├────────┼────────────────┼─────────────────────────────────────────┤
//	│ GET    │ /view          │ Current table state                     │
//	│ PUT    │ /view/query    │ Set search text, back to page 1         │
//	│ PUT    │ /view/sort     │ Set sort keys ("name:asc", ...)         │
//	│ PUT    │ /view/per-page │ Set page size (configured choices only) │
//	│ PUT    │ /view/page     │ Go to a page or first/prev/next/last    │
//	│ PUT    │ /selection     │ Check/uncheck the visible page          │
//	│ PUT    │ /selection/:id │ Check/uncheck one record                │
//	└────────┴────────────────┴─────────────────────────────────────────┘
//
// Records (records.go):
//
//	┌────────┬──────────────────────────────────┬──────────────────────────┐
//	│ Method │ Endpoint                         │ Description              │
//	├────────┼──────────────────────────────────┼──────────────────────────┤
//	│ POST   │ /records                         │ Create a record          │
//	│ PATCH  │ /records/:id                     │ Partial update           │
//	│ DELETE │ /records/:id                     │ Delete one record        │
//	│ POST   │ /records/:id/copy                │ Duplicate a record       │
//	│ POST   │ /records/bulk-delete?confirm=true│ Delete selected records  │
//	│ DELETE │ /records?confirm=true            │ Delete every record      │
//	└────────┴──────────────────────────────────┴──────────────────────────┘
//
// Export (export.go):
//
//	┌────────┬──────────────┬──────────────────────────────────────────────┐
//	│ Method │ Endpoint     │ Description                                  │
//	├────────┼──────────────┼──────────────────────────────────────────────┤
//	│ GET    │ /export.csv  │ users.csv, ?filtered=true for query matches  │
//	│ GET    │ /export.xlsx │ users.xlsx, same selection as the CSV        │
//	└────────┴──────────────┴──────────────────────────────────────────────┘
//
// # Error Handling
//
//	┌───────────────────────────┬─────────────┬──────────────────────────┐
//	│ Error                     │ HTTP Status │ Body                     │
//	├───────────────────────────┼─────────────┼──────────────────────────┤
//	│ Malformed body or param   │ 400         │ error                    │
//	│ ValidationError           │ 400         │ error, fields, view      │
//	│ ConfirmationRequiredError │ 409         │ error, view              │
//	│ Request canceled          │ 503         │ error                    │
//	│ Anything else             │ 500         │ error                    │
//	└───────────────────────────┴─────────────┴──────────────────────────┘
//
// Stale record ids are not errors: the request succeeds and the view is
// returned unchanged. Storage failures are reported in the view's warning
// field with status 200.
package handlers
