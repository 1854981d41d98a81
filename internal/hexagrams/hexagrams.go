// internal/hexagrams/hexagrams.go
//
// Package hexagrams maps six-bit hexagram encodings to their King Wen
// records and turns a finished casting into the material an interpreter
// prompt needs: names, judgment texts and the classical rule for which
// text carries the verdict.
//
// The dataset is embedded so the binary has no runtime data dependency.
// Binary keys read bottom line first; '1' is a solid line.
package hexagrams

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed data.json
var rawData []byte

// Hexagram is one King Wen record.
type Hexagram struct {
	Number   int    `json:"number"`
	Name     string `json:"name_cn"`
	Pinyin   string `json:"pinyin"`
	English  string `json:"name_en"`
	Lower    string `json:"lower"`
	Upper    string `json:"upper"`
	Binary   string `json:"binary"`
	Judgment string `json:"judgment"`
}

// Symbol returns the Unicode hexagram character (U+4DC0 block).
func (h Hexagram) Symbol() string {
	if h.Number < 1 || h.Number > 64 {
		return ""
	}
	return string(rune(0x4DC0 + h.Number - 1))
}

// Title renders "乾卦（第1卦）" for display and prompt headers.
func (h Hexagram) Title() string {
	return fmt.Sprintf("%s卦（第%d卦）", h.Name, h.Number)
}

var (
	loadOnce sync.Once
	byBinary map[string]Hexagram
	loadErr  error
)

func load() error {
	loadOnce.Do(func() {
		var records []Hexagram
		if err := json.Unmarshal(rawData, &records); err != nil {
			loadErr = fmt.Errorf("hexagrams: parse embedded dataset: %w", err)
			return
		}
		if len(records) != 64 {
			loadErr = fmt.Errorf("hexagrams: dataset has %d records, want 64", len(records))
			return
		}
		index := make(map[string]Hexagram, len(records))
		for _, rec := range records {
			index[rec.Binary] = rec
		}
		byBinary = index
	})
	return loadErr
}

// Lookup resolves a bottom-first six-bit encoding to its record.
func Lookup(binary string) (Hexagram, error) {
	if err := load(); err != nil {
		return Hexagram{}, err
	}
	rec, ok := byBinary[binary]
	if !ok {
		return Hexagram{}, fmt.Errorf("hexagrams: no hexagram for binary %q", binary)
	}
	return rec, nil
}

// All returns the 64 records in King Wen order.
func All() ([]Hexagram, error) {
	if err := load(); err != nil {
		return nil, err
	}
	out := make([]Hexagram, 64)
	for _, rec := range byBinary {
		out[rec.Number-1] = rec
	}
	return out, nil
}
