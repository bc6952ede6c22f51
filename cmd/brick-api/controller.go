package main

import (
	"context"

	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/protein"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/registry"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/seq"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/services/pdb"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/services/quickgo"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/services/uniprot"
)

type controller struct {
	registry *registry.Client
	services protein.Services
}

type attribute struct {
	Path  string `json:"path"`
	Value string `json:"value"`
}

type translation struct {
	Table    int    `json:"table"`
	ToStop   bool   `json:"to_stop"`
	Sequence string `json:"sequence"`
}

type structureCount struct {
	Count int `json:"count"`
}

func (c controller) protein(ctx context.Context, id string) (*protein.Protein, error) {
	part, err := c.registry.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	return protein.New(part, c.services), nil
}

func (c controller) Summary(ctx context.Context, id string) (registry.Summary, error) {
	part, err := c.registry.Fetch(ctx, id)
	if err != nil {
		return registry.Summary{}, err
	}
	return part.Summary(), nil
}

func (c controller) Attribute(ctx context.Context, id, path string) (attribute, error) {
	part, err := c.registry.Fetch(ctx, id)
	if err != nil {
		return attribute{}, err
	}
	value, err := part.Attribute(path)
	if err != nil {
		return attribute{}, err
	}
	return attribute{Path: path, Value: value}, nil
}

func (c controller) Translate(ctx context.Context, id string, table seq.Table, toStop bool) (translation, error) {
	p, err := c.protein(ctx, id)
	if err != nil {
		return translation{}, err
	}
	translate := p.Translate
	if toStop {
		translate = p.TranslateToStop
	}
	aa, err := translate(table)
	if err != nil {
		return translation{}, err
	}
	return translation{Table: table.ID, ToStop: toStop, Sequence: aa}, nil
}

func (c controller) UniProt(ctx context.Context, id string, format uniprot.Format) ([]byte, error) {
	p, err := c.protein(ctx, id)
	if err != nil {
		return nil, err
	}
	return p.UniProtOverview(ctx, format)
}

func (c controller) Structures(ctx context.Context, id string) ([]string, error) {
	p, err := c.protein(ctx, id)
	if err != nil {
		return nil, err
	}
	return p.Structures(ctx)
}

func (c controller) StructureCount(ctx context.Context, id string) (structureCount, error) {
	p, err := c.protein(ctx, id)
	if err != nil {
		return structureCount{}, err
	}
	n, err := p.StructureCount(ctx)
	return structureCount{Count: n}, err
}

func (c controller) StructureFile(ctx context.Context, id string, n int, format pdb.Format) ([]byte, error) {
	p, err := c.protein(ctx, id)
	if err != nil {
		return nil, err
	}
	return p.StructureFile(ctx, n, format)
}

func (c controller) GOAnnotations(ctx context.Context, id string) (quickgo.Annotations, error) {
	p, err := c.protein(ctx, id)
	if err != nil {
		return nil, err
	}
	return p.GOAnnotations(ctx)
}

func (c controller) RelatedModels(ctx context.Context, id string, term, limit int) (protein.RelatedModels, error) {
	p, err := c.protein(ctx, id)
	if err != nil {
		return protein.RelatedModels{}, err
	}
	return p.RelatedModels(ctx, term, limit)
}
