// Package models holds the roster value types shared by every layer.
package models

// Player is a single roster entry: a display name paired with its identifier.
type Player struct {
	Name string
	ID   string
}

// NewPlayer creates a Player from raw roster values. Values are kept verbatim.
func NewPlayer(name, id string) Player {
	return Player{Name: name, ID: id}
}
