package store

import (
	"encoding/json"
	"log"

	"github.com/Greenoni119/k2.0/models"
)

func encodeLines(lines []models.CartLine) (string, error) {
	if lines == nil {
		lines = []models.CartLine{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// decodeLines turns a stored payload back into an ordered line list.
// Corrupt or incompatible payloads degrade to an empty cart.
func decodeLines(payload string) []models.CartLine {
	if payload == "" {
		return []models.CartLine{}
	}
	var lines []models.CartLine
	if err := json.Unmarshal([]byte(payload), &lines); err != nil {
		log.Printf("cart store: discarding undecodable cart payload: %v", err)
		return []models.CartLine{}
	}
	if lines == nil {
		return []models.CartLine{}
	}
	return lines
}
