package utils

import (
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

// GenerateRunID identifica uma execução de lote nos logs e relatórios
func GenerateRunID() string {
	id, err := gonanoid.Generate(characters, 10)
	if err != nil {
		return uuid.NewString()
	}
	return id
}

func NewUUID() string {
	return uuid.NewString()
}
