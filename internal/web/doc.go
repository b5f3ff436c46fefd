// Package web serves the three demos as HTML pages and a small JSON API.
//
// The pages mirror the demo menus: /faces uploads a photo and shows the
// detected faces, /playground applies one processing operation and shows the
// result next to the upload, and /sentiment scores a product comment. The
// /api routes return the same results as JSON for scripts.
//
// Nothing is stored between requests. Every POST carries its own upload.
package web
