package source

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"wheelview/internal/content"
)

//go:embed provinces.json
var provincesJSON []byte

// Province is one top-level region with its cities.
type Province struct {
	Name   string `json:"name"`
	Cities []City `json:"city"`
}

// City lists its areas.
type City struct {
	Name  string   `json:"name"`
	Areas []string `json:"area"`
}

// DecodeProvinces reads a province/city/area dataset.
func DecodeProvinces(r io.Reader) ([]Province, error) {
	var out []Province
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode provinces: %w", err)
	}
	return out, nil
}

// Provinces serves the province names of a dataset and answers the linked
// city and area lists for a selection.
type Provinces struct {
	path string
	data []Province
}

// NewProvinces serves data, or the built-in dataset when data is nil.
func NewProvinces(data []Province) *Provinces {
	return &Provinces{data: data}
}

// NewProvincesFile loads the dataset from path on Connect.
func NewProvincesFile(path string) *Provinces {
	return &Provinces{path: path}
}

func (p *Provinces) Name() string { return "provinces" }

func (p *Provinces) Connect(ctx context.Context) error {
	if p.data != nil {
		return nil
	}
	if p.path == "" {
		data, err := decodeBytes(provincesJSON)
		if err != nil {
			return err
		}
		p.data = data
		return nil
	}
	f, err := os.Open(p.path)
	if err != nil {
		return fmt.Errorf("open provinces %s: %w", p.path, err)
	}
	defer f.Close()
	data, err := DecodeProvinces(f)
	if err != nil {
		return err
	}
	p.data = data
	return nil
}

func (p *Provinces) Disconnect(ctx context.Context) error { return nil }

func (p *Provinces) Collect(ctx context.Context) (content.List, error) {
	if p.data == nil {
		if err := p.Connect(ctx); err != nil {
			return content.List{}, err
		}
	}
	names := make([]string, len(p.data))
	for i, prov := range p.data {
		names[i] = prov.Name
	}
	return content.Of(names...), nil
}

// Data returns the loaded dataset.
func (p *Provinces) Data() []Province { return p.data }

// Cities lists the city names of the province at position, clamped.
func (p *Provinces) Cities(province int) content.List {
	if len(p.data) == 0 {
		return content.List{}
	}
	prov := p.data[content.Clamp(province, len(p.data))]
	names := make([]string, len(prov.Cities))
	for i, c := range prov.Cities {
		names[i] = c.Name
	}
	return content.Of(names...)
}

// Areas lists the areas of a city, both positions clamped.
func (p *Provinces) Areas(province, city int) content.List {
	if len(p.data) == 0 {
		return content.List{}
	}
	prov := p.data[content.Clamp(province, len(p.data))]
	if len(prov.Cities) == 0 {
		return content.List{}
	}
	return content.Of(prov.Cities[content.Clamp(city, len(prov.Cities))].Areas...)
}

func decodeBytes(b []byte) ([]Province, error) {
	var out []Province
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode provinces: %w", err)
	}
	return out, nil
}
