// Package userservice contains the webshop user account module: registration,
// credential verification, and admin-side user management.
//
// The module keeps domain/application logic decoupled from runtime/platform
// concerns through ports and adapter composition.
package userservice
