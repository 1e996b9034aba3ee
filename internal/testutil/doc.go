// Package testutil holds test doubles shared across rnconsole packages.
package testutil
