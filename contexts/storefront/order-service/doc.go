// Package orderservice contains the webshop order module. Order rows carry
// the owning customer id; the access policy uses it for per-row ownership
// checks.
package orderservice
