package main

import (
	"encoding/json"

	"github.com/vancomm/colorsort-server/internal/repository"
)

type LevelDTO struct {
	Number     int `json:"number"`
	BaseCount  int `json:"baseCount"`
	BaseHeight int `json:"baseHeight"`
	Steps      int `json:"steps"`
	Explored   int `json:"explored"`
	// Level is the stored {"rows": [...]} payload as generated.
	Level json.RawMessage `json:"level"`
}

func levelDTO(l *repository.Level) LevelDTO {
	return LevelDTO{
		Number:     l.Number,
		BaseCount:  l.BaseCount,
		BaseHeight: l.BaseHeight,
		Steps:      l.Steps,
		Explored:   l.Explored,
		Level:      json.RawMessage(l.Rows),
	}
}
