// Package flash keeps one-shot messages in a signed cookie so they survive a
// redirect.
//
// A handler adds a message before redirecting and the next page pops the
// messages, which clears the cookie:
//
//	store := flash.New(cookies)
//
//	_ = store.Add(w, r, flash.Message{Message: "Saved successfully", Category: "success"})
//	http.Redirect(w, r, "/", http.StatusSeeOther)
//
//	// on the next request
//	for _, m := range store.Pop(w, r) {
//		notifier.Inline(ctx, m.Message, m.Category)
//	}
//
// Signing and cookie attributes come from the cookie.Manager. Cookies with a
// bad signature or an unreadable payload are dropped.
package flash
