// Package mocks provides hand-written test doubles for the application's
// store and service interfaces. Each mock exposes Fn fields for custom
// behavior and simple data fields for the default implementation.
package mocks
