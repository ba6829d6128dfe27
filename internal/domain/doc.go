// Package domain contains the core entities of the blog API: posts, the
// users who author them, and the categories they are filed under. Entities
// validate themselves; persistence and wire representation live elsewhere.
package domain
