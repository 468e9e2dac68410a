// Package web serves the toast demo: a page that keeps a datastar stream
// open, endpoints that raise toasts on every connected page, and a plain
// form fallback that goes through flash cookies.
package web
