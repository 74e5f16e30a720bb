// Package util contains helper functions used around the code.
package util

import "net/url"

// In returns true if s is found in ss, false otherwise
func In[T comparable](ss []T, s T) bool {
	for _, v := range ss {
		if s == v {
			return true
		}
	}

	return false
}

// Mask hides a secret so it can be logged. Empty secrets stay empty so their absence is still visible.
func Mask(s string) string {
	if s == "" {
		return ""
	}

	return "****"
}

// Redact replaces the password of a connection url. Strings that are not urls or carry no user info are returned as is.
func Redact(conn string) string {
	u, err := url.Parse(conn)
	if err != nil || u.User == nil {
		return conn
	}

	return u.Redacted()
}
