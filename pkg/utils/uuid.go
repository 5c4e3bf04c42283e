package utils

import (
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto alfanumérico.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}

// PrefixedID gera um identificador no formato <prefix>-<nanoid>.
func PrefixedID(prefix string) (string, error) {
	id, err := GenerateID()
	if err != nil {
		return "", err
	}
	return prefix + "-" + id, nil
}

// NewPlanID gera o identificador opaco de um plano.
func NewPlanID() string {
	return uuid.NewString()
}
