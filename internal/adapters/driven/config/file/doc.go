// Package file provides the TOML configuration store kept in the user's
// safedrive directory (~/.safedrive/config.toml by default).
package file
