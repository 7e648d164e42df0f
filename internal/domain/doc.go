// Package domain defines the core business entities and their validation
// rules. Entities here carry no storage or transport concerns; stores and
// handlers depend on this package, never the other way around.
package domain
