package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// GenerateID returns a short random identifier, empty on failure.
func GenerateID() string {
	return GenerateIDOfLength(7)
}

func GenerateIDOfLength(length int) string {
	id, err := gonanoid.Generate(idAlphabet, length)
	if err != nil {
		return ""
	}
	return id
}

// GenerateRequestID is used to correlate log lines of one HTTP request.
func GenerateRequestID() string {
	return GenerateIDOfLength(16)
}
