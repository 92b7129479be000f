package main

import (
	"github.com/gorilla/schema"

	"github.com/vancomm/colorsort-server/internal/levels"
)

type GenParams struct {
	Number     int    `schema:"number,required"`
	BasesCount int    `schema:"bases_count"`
	BaseHeight int    `schema:"base_height"`
	Steps      int    `schema:"steps"`
	Strategy   string `schema:"strategy"`
	Overwrite  bool   `schema:"overwrite"`
}

func decodeGenParams(src map[string][]string) (GenParams, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var dto GenParams
	err := dec.Decode(&dto, src)
	return dto, err
}

// settings resolves the request against the shipped schedule: explicit
// query values win, the schedule position of the requested level number
// fills the rest.
func (p GenParams) settings() levels.Settings {
	s := levels.DefaultSchedule.At(p.Number)
	if p.BasesCount > 0 {
		s.BasesCount = p.BasesCount
	}
	if p.BaseHeight > 0 {
		s.BaseHeight = p.BaseHeight
	}
	if p.Steps > 0 {
		s.Steps = p.Steps
	}
	return s
}
