package herokuauth

import "strings"

// UID returns the authenticated account's email address, Heroku's stable
// user identifier. Returns "" when no profile was fetched.
func (p *Heroku) UID(st *State) string {
	if st == nil {
		return ""
	}
	return st.Profile.String("email")
}

// Credentials projects the exchanged token into a normalized record. The
// Scopes list comes from splitting the provider-returned scope string on
// commas; an absent scope yields an empty list.
func (p *Heroku) Credentials(st *State) Credentials {
	c := Credentials{Scopes: []string{}}
	if st == nil || st.Token == nil {
		return c
	}

	t := st.Token
	c.Token = t.AccessToken
	c.RefreshToken = t.RefreshToken
	c.TokenType = t.TokenType
	if !t.Expiry.IsZero() {
		c.Expires = true
		c.ExpiresAt = t.Expiry
	}
	if scope, ok := t.Extra("scope").(string); ok && scope != "" {
		c.Scopes = strings.Split(scope, ",")
	}
	return c
}

// Info projects the account profile into a normalized record. Values are
// copied verbatim, without normalization or validation.
func (p *Heroku) Info(st *State) Info {
	if st == nil {
		return Info{}
	}
	return Info{
		Name:  st.Profile.String("name"),
		Email: st.Profile.String("email"),
	}
}

// Extra exposes the raw token and profile for diagnostic consumption.
func (p *Heroku) Extra(st *State) Extra {
	if st == nil {
		return Extra{}
	}
	return Extra{RawInfo: RawInfo{Token: st.Token, User: st.Profile}}
}
