// Package cookie sets and reads HTTP cookies with shared defaults and
// optional HMAC-SHA256 signatures.
//
// A Manager holds one or more secrets. The first one signs new cookies;
// all of them are tried when verifying, so secrets can be rotated without
// invalidating cookies already in flight:
//
//	cookies, err := cookie.New([]string{newSecret, oldSecret}, cookie.WithSecure(true))
//	if err != nil {
//		return err
//	}
//
//	_ = cookies.SetSigned(w, "notice", "hello")
//	value, err := cookies.GetSigned(r, "notice")
//
// Secrets must be at least 32 bytes. Values are capped at MaxValueSize
// bytes so the whole cookie stays under the 4KB browser limit.
package cookie
