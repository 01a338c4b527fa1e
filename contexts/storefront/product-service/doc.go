// Package productservice contains the webshop product catalog module.
package productservice
