package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera o ID curto usado para identificar gerações de snapshot
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
