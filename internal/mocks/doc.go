// Package mocks provides hand-written test doubles for the service and store
// interfaces. Each mock exposes function fields so a test can override just
// the behavior it cares about, plus call counters for asserting that an
// operation was (or was not) attempted.
package mocks
